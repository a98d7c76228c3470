package sqlite

import (
	"context"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.Trainer] = (*TrainersTable)(nil)

// TrainersTable is the accessor for gym trainers.
type TrainersTable struct {
	tableBase
}

const trainerColumns = "trainer_id, first_name, last_name, specialization, contact_number, hourly_rate"

func scanTrainer(s scanner) (types.Trainer, error) {
	var t types.Trainer
	err := s.Scan(&t.TrainerID, &t.FirstName, &t.LastName, &t.Specialization, &t.ContactNumber, &t.HourlyRate)
	return t, err
}

// List returns all trainers ordered by last and first name.
func (tt *TrainersTable) List(ctx context.Context) ([]types.Trainer, error) {
	return list(ctx, tt.tableBase, scanTrainer,
		"SELECT "+trainerColumns+" FROM trainer ORDER BY last_name, first_name")
}

// Get returns one trainer.
func (tt *TrainersTable) Get(ctx context.Context, id int64) (*types.Trainer, error) {
	return get(ctx, tt.tableBase, scanTrainer,
		"SELECT "+trainerColumns+" FROM trainer WHERE trainer_id = ?", id)
}

// Create inserts a trainer and returns its id.
func (tt *TrainersTable) Create(ctx context.Context, t *types.Trainer) (int64, error) {
	return tt.insert(ctx, t,
		`INSERT INTO trainer (first_name, last_name, specialization, contact_number, hourly_rate)
VALUES (?, ?, ?, ?, ?)`,
		t.FirstName, t.LastName, t.Specialization, t.ContactNumber, t.HourlyRate)
}

// Update replaces every column of a trainer.
func (tt *TrainersTable) Update(ctx context.Context, id int64, t *types.Trainer) error {
	return tt.replace(ctx, id, t,
		`UPDATE trainer
SET first_name = ?, last_name = ?, specialization = ?, contact_number = ?, hourly_rate = ?
WHERE trainer_id = ?`,
		t.FirstName, t.LastName, t.Specialization, t.ContactNumber, t.HourlyRate, id)
}

// Delete removes a trainer. Members assigned to the trainer keep the stale
// trainer_id; foreign keys are declared but not enforced.
func (tt *TrainersTable) Delete(ctx context.Context, id int64) error {
	return tt.remove(ctx, id)
}
