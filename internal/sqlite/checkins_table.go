package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// CheckinsTable is the accessor for hospital check-ins.
type CheckinsTable struct {
	tableBase
}

const checkinSelect = `SELECT c.checkin_id, c.patient_id, c.doctor_id, c.disease_id, c.checkin_date,
    c.checkin_time, c.notes, p.first_name, p.last_name,
    d.first_name AS doctor_first_name, d.last_name AS doctor_last_name, s.name AS disease_name
FROM checkin c
LEFT JOIN patient p ON c.patient_id = p.patient_id
LEFT JOIN doctor d ON c.doctor_id = d.doctor_id
LEFT JOIN disease s ON c.disease_id = s.disease_id`

func scanCheckin(s scanner) (types.Checkin, error) {
	var c types.Checkin
	err := s.Scan(&c.CheckinID, &c.PatientID, &c.DoctorID, &c.DiseaseID, &c.CheckinDate,
		&c.CheckinTime, &c.Notes, &c.FirstName, &c.LastName,
		&c.DoctorFirstName, &c.DoctorLastName, &c.DiseaseName)
	return c, err
}

// List returns every check-in, newest first.
func (ct *CheckinsTable) List(ctx context.Context) ([]types.Checkin, error) {
	return list(ctx, ct.tableBase, scanCheckin,
		checkinSelect+" ORDER BY c.checkin_date DESC, c.checkin_time DESC")
}

// Today returns today's check-ins, newest first.
func (ct *CheckinsTable) Today(ctx context.Context) ([]types.Checkin, error) {
	return list(ctx, ct.tableBase, scanCheckin,
		checkinSelect+" WHERE c.checkin_date = ? ORDER BY c.checkin_time DESC",
		ct.backend.today())
}

// ForPatient returns one patient's check-ins, newest first.
func (ct *CheckinsTable) ForPatient(ctx context.Context, patientID int64) ([]types.Checkin, error) {
	return list(ctx, ct.tableBase, scanCheckin,
		checkinSelect+" WHERE c.patient_id = ? ORDER BY c.checkin_date DESC, c.checkin_time DESC",
		patientID)
}

// Get returns one check-in.
func (ct *CheckinsTable) Get(ctx context.Context, id int64) (*types.Checkin, error) {
	return get(ctx, ct.tableBase, scanCheckin, checkinSelect+" WHERE c.checkin_id = ?", id)
}

// Delete removes a check-in.
func (ct *CheckinsTable) Delete(ctx context.Context, id int64) error {
	return ct.remove(ctx, id)
}

// Record checks a patient in for today and returns the new check-in id.
// The patient must exist; a doctor or disease given in the request must
// exist too. The insert is conditional on the unique
// (patient_id, checkin_date) index, as for gym attendance.
func (ct *CheckinsTable) Record(ctx context.Context, req *types.CheckinRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	patientID := req.PatientID.Int64
	date, stamp := ct.backend.today(), ct.backend.timestamp()

	var id int64
	err := ct.backend.withTx(ctx, func(tx *sql.Tx) error {
		refs := []struct {
			table tableBase
			id    types.NullInt64
		}{
			{ct.backend.patients.tableBase, req.PatientID},
			{ct.backend.doctors.tableBase, req.DoctorID},
			{ct.backend.diseases.tableBase, req.DiseaseID},
		}
		for _, ref := range refs {
			if !ref.id.Present() {
				continue
			}
			ok, err := ref.table.exists(ctx, tx, ref.id.Int64)
			if err != nil {
				return err
			}
			if !ok {
				return ref.table.notFound(ref.id.Int64)
			}
		}

		r, err := run(ctx, tx,
			`INSERT INTO checkin (patient_id, doctor_id, disease_id, checkin_date, checkin_time, notes)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (patient_id, checkin_date) DO NOTHING`,
			patientID, req.DoctorID, req.DiseaseID, date, stamp, req.Notes)
		if err != nil {
			return fmt.Errorf("recording checkin: %w", err)
		}
		if r.RowsAffected == 0 {
			return &types.CheckedInError{Entity: "Patient", ID: patientID, Date: date}
		}
		id = r.InsertedID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
