package sqlite

import (
	"context"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.Patient] = (*PatientsTable)(nil)

// PatientsTable is the accessor for hospital patients.
type PatientsTable struct {
	tableBase
}

const patientSelect = `SELECT p.patient_id, p.doctor_id, p.first_name, p.last_name, p.contact_number,
    p.email, p.date_of_birth, p.gender, p.blood_type, p.allergies, p.emergency_contact,
    d.first_name AS doctor_first_name, d.last_name AS doctor_last_name
FROM patient p
LEFT JOIN doctor d ON p.doctor_id = d.doctor_id`

func scanPatient(s scanner) (types.Patient, error) {
	var p types.Patient
	err := s.Scan(&p.PatientID, &p.DoctorID, &p.FirstName, &p.LastName, &p.ContactNumber,
		&p.Email, &p.DateOfBirth, &p.Gender, &p.BloodType, &p.Allergies, &p.EmergencyContact,
		&p.DoctorFirstName, &p.DoctorLastName)
	return p, err
}

// List returns all patients with their doctor's name, ordered by last and
// first name.
func (pt *PatientsTable) List(ctx context.Context) ([]types.Patient, error) {
	return list(ctx, pt.tableBase, scanPatient, patientSelect+" ORDER BY p.last_name, p.first_name")
}

// Get returns one patient with the doctor's name.
func (pt *PatientsTable) Get(ctx context.Context, id int64) (*types.Patient, error) {
	return get(ctx, pt.tableBase, scanPatient, patientSelect+" WHERE p.patient_id = ?", id)
}

// Create inserts a patient and returns its id.
func (pt *PatientsTable) Create(ctx context.Context, p *types.Patient) (int64, error) {
	return pt.insert(ctx, p,
		`INSERT INTO patient (first_name, last_name, doctor_id, contact_number, email, date_of_birth,
    gender, blood_type, allergies, emergency_contact)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.FirstName, p.LastName, p.DoctorID, p.ContactNumber, p.Email, p.DateOfBirth,
		p.Gender, p.BloodType, p.Allergies, p.EmergencyContact)
}

// Update replaces every writable column of a patient.
func (pt *PatientsTable) Update(ctx context.Context, id int64, p *types.Patient) error {
	return pt.replace(ctx, id, p,
		`UPDATE patient
SET first_name = ?, last_name = ?, doctor_id = ?, contact_number = ?, email = ?, date_of_birth = ?,
    gender = ?, blood_type = ?, allergies = ?, emergency_contact = ?
WHERE patient_id = ?`,
		p.FirstName, p.LastName, p.DoctorID, p.ContactNumber, p.Email, p.DateOfBirth,
		p.Gender, p.BloodType, p.Allergies, p.EmergencyContact, id)
}

// Delete removes a patient. History and check-in rows are kept.
func (pt *PatientsTable) Delete(ctx context.Context, id int64) error {
	return pt.remove(ctx, id)
}
