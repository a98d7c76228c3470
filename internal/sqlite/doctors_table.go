package sqlite

import (
	"context"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.Doctor] = (*DoctorsTable)(nil)

// DoctorsTable is the accessor for hospital doctors.
type DoctorsTable struct {
	tableBase
}

const doctorColumns = "doctor_id, first_name, last_name, specialization, contact_number, consultation_fee"

func scanDoctor(s scanner) (types.Doctor, error) {
	var d types.Doctor
	err := s.Scan(&d.DoctorID, &d.FirstName, &d.LastName, &d.Specialization, &d.ContactNumber, &d.ConsultationFee)
	return d, err
}

// List returns all doctors ordered by last and first name.
func (dt *DoctorsTable) List(ctx context.Context) ([]types.Doctor, error) {
	return list(ctx, dt.tableBase, scanDoctor,
		"SELECT "+doctorColumns+" FROM doctor ORDER BY last_name, first_name")
}

// Get returns one doctor.
func (dt *DoctorsTable) Get(ctx context.Context, id int64) (*types.Doctor, error) {
	return get(ctx, dt.tableBase, scanDoctor,
		"SELECT "+doctorColumns+" FROM doctor WHERE doctor_id = ?", id)
}

// Create inserts a doctor and returns its id.
func (dt *DoctorsTable) Create(ctx context.Context, d *types.Doctor) (int64, error) {
	return dt.insert(ctx, d,
		`INSERT INTO doctor (first_name, last_name, specialization, contact_number, consultation_fee)
VALUES (?, ?, ?, ?, ?)`,
		d.FirstName, d.LastName, d.Specialization, d.ContactNumber, d.ConsultationFee)
}

// Update replaces every column of a doctor.
func (dt *DoctorsTable) Update(ctx context.Context, id int64, d *types.Doctor) error {
	return dt.replace(ctx, id, d,
		`UPDATE doctor
SET first_name = ?, last_name = ?, specialization = ?, contact_number = ?, consultation_fee = ?
WHERE doctor_id = ?`,
		d.FirstName, d.LastName, d.Specialization, d.ContactNumber, d.ConsultationFee, id)
}

// Delete removes a doctor.
func (dt *DoctorsTable) Delete(ctx context.Context, id int64) error {
	return dt.remove(ctx, id)
}
