package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// seedStaff describes a trainer or doctor seeded on startup. Staff have no
// natural key, so they are matched by first and last name.
type seedStaff struct {
	firstName      string
	lastName       string
	specialization string
	contactNumber  string
	rate           float64
}

// seedDisease describes a disease seeded on startup, keyed by its unique name.
type seedDisease struct {
	name        string
	description string
	severity    string
}

var seedTrainers = []seedStaff{
	{"John", "Smith", "Weight Training", "555-1234", 50.00},
	{"Sarah", "Johnson", "Yoga", "555-5678", 45.00},
	{"Mike", "Williams", "Cardio", "555-9012", 40.00},
}

var seedDoctors = []seedStaff{
	{"Gregory", "House", "Diagnostics", "555-2100", 150.00},
	{"Meredith", "Grey", "General Surgery", "555-2200", 120.00},
	{"Derek", "Shepherd", "Neurology", "555-2300", 140.00},
}

var seedDiseases = []seedDisease{
	{"Influenza", "Viral respiratory infection", "Moderate"},
	{"Hypertension", "Persistently elevated blood pressure", "Moderate"},
	{"Type 2 Diabetes", "Chronic insulin resistance", "Severe"},
	{"Asthma", "Chronic inflammation of the airways", "Moderate"},
	{"Migraine", "Recurrent moderate to severe headaches", "Mild"},
}

// seed inserts the variant's reference rows that are not already present.
// All inserts run in one transaction.
func seed(ctx context.Context, db *sql.DB, variant string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	switch variant {
	case types.VariantGym:
		if err := seedStaffRows(ctx, tx, types.TableTrainer, "hourly_rate", seedTrainers); err != nil {
			return err
		}
	case types.VariantHospital:
		if err := seedStaffRows(ctx, tx, types.TableDoctor, "consultation_fee", seedDoctors); err != nil {
			return err
		}
		for _, d := range seedDiseases {
			_, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO disease (name, description, severity) VALUES (?, ?, ?)",
				d.name, d.description, d.severity,
			)
			if err != nil {
				return fmt.Errorf("seeding disease %s: %w", d.name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

// seedStaffRows inserts each staff row unless one with the same name exists.
func seedStaffRows(ctx context.Context, tx *sql.Tx, table, rateColumn string, staff []seedStaff) error {
	stmt := fmt.Sprintf(`INSERT INTO %[1]s (first_name, last_name, specialization, contact_number, %[2]s)
SELECT ?, ?, ?, ?, ?
WHERE NOT EXISTS (SELECT 1 FROM %[1]s WHERE first_name = ? AND last_name = ?)`, table, rateColumn)

	for _, s := range staff {
		_, err := tx.ExecContext(ctx, stmt,
			s.firstName, s.lastName, s.specialization, s.contactNumber, s.rate,
			s.firstName, s.lastName,
		)
		if err != nil {
			return fmt.Errorf("seeding %s %s %s: %w", table, s.firstName, s.lastName, err)
		}
	}
	return nil
}
