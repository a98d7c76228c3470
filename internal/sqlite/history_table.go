package sqlite

import (
	"context"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.MedicalHistory] = (*HistoryTable)(nil)

// HistoryTable is the accessor for medical history, which links patients to
// the diseases they were diagnosed with.
type HistoryTable struct {
	tableBase
}

const historySelect = `SELECT h.history_id, h.patient_id, h.disease_id, h.diagnosis_date, h.status, h.notes,
    p.first_name, p.last_name, d.name AS disease_name
FROM medical_history h
LEFT JOIN patient p ON h.patient_id = p.patient_id
LEFT JOIN disease d ON h.disease_id = d.disease_id`

func scanHistory(s scanner) (types.MedicalHistory, error) {
	var h types.MedicalHistory
	err := s.Scan(&h.HistoryID, &h.PatientID, &h.DiseaseID, &h.DiagnosisDate, &h.Status, &h.Notes,
		&h.FirstName, &h.LastName, &h.DiseaseName)
	return h, err
}

// List returns every history entry, most recent diagnosis first.
func (ht *HistoryTable) List(ctx context.Context) ([]types.MedicalHistory, error) {
	return list(ctx, ht.tableBase, scanHistory,
		historySelect+" ORDER BY h.diagnosis_date DESC, h.history_id DESC")
}

// ForPatient returns one patient's history, most recent diagnosis first.
func (ht *HistoryTable) ForPatient(ctx context.Context, patientID int64) ([]types.MedicalHistory, error) {
	return list(ctx, ht.tableBase, scanHistory,
		historySelect+" WHERE h.patient_id = ? ORDER BY h.diagnosis_date DESC, h.history_id DESC",
		patientID)
}

// Get returns one history entry.
func (ht *HistoryTable) Get(ctx context.Context, id int64) (*types.MedicalHistory, error) {
	return get(ctx, ht.tableBase, scanHistory, historySelect+" WHERE h.history_id = ?", id)
}

// Create inserts a history entry and returns its id. A patient can be
// diagnosed with a given disease once.
func (ht *HistoryTable) Create(ctx context.Context, h *types.MedicalHistory) (int64, error) {
	return ht.insert(ctx, h,
		`INSERT INTO medical_history (patient_id, disease_id, diagnosis_date, status, notes)
VALUES (?, ?, ?, ?, ?)`,
		h.PatientID, h.DiseaseID, h.DiagnosisDate, h.Status, h.Notes)
}

// Update replaces every writable column of a history entry.
func (ht *HistoryTable) Update(ctx context.Context, id int64, h *types.MedicalHistory) error {
	return ht.replace(ctx, id, h,
		`UPDATE medical_history
SET patient_id = ?, disease_id = ?, diagnosis_date = ?, status = ?, notes = ?
WHERE history_id = ?`,
		h.PatientID, h.DiseaseID, h.DiagnosisDate, h.Status, h.Notes, id)
}

// Delete removes a history entry.
func (ht *HistoryTable) Delete(ctx context.Context, id int64) error {
	return ht.remove(ctx, id)
}
