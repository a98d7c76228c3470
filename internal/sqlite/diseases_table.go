package sqlite

import (
	"context"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.Disease] = (*DiseasesTable)(nil)

// DiseasesTable is the accessor for the disease reference table.
type DiseasesTable struct {
	tableBase
}

const diseaseColumns = "disease_id, name, description, severity"

func scanDisease(s scanner) (types.Disease, error) {
	var d types.Disease
	err := s.Scan(&d.DiseaseID, &d.Name, &d.Description, &d.Severity)
	return d, err
}

// List returns all diseases ordered by name.
func (dt *DiseasesTable) List(ctx context.Context) ([]types.Disease, error) {
	return list(ctx, dt.tableBase, scanDisease, "SELECT "+diseaseColumns+" FROM disease ORDER BY name")
}

// Get returns one disease.
func (dt *DiseasesTable) Get(ctx context.Context, id int64) (*types.Disease, error) {
	return get(ctx, dt.tableBase, scanDisease, "SELECT "+diseaseColumns+" FROM disease WHERE disease_id = ?", id)
}

// Create inserts a disease and returns its id. Names are unique.
func (dt *DiseasesTable) Create(ctx context.Context, d *types.Disease) (int64, error) {
	return dt.insert(ctx, d,
		"INSERT INTO disease (name, description, severity) VALUES (?, ?, ?)",
		d.Name, d.Description, d.Severity)
}

// Update replaces every column of a disease.
func (dt *DiseasesTable) Update(ctx context.Context, id int64, d *types.Disease) error {
	return dt.replace(ctx, id, d,
		"UPDATE disease SET name = ?, description = ?, severity = ? WHERE disease_id = ?",
		d.Name, d.Description, d.Severity, id)
}

// Delete removes a disease.
func (dt *DiseasesTable) Delete(ctx context.Context, id int64) error {
	return dt.remove(ctx, id)
}
