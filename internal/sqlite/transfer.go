package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// tableColumns lists the columns exported and imported for each table.
// Import reads only these keys, so records written by other versions load
// as long as the columns they share match.
var tableColumns = map[string][]string{
	types.TableTrainer:        {"trainer_id", "first_name", "last_name", "specialization", "contact_number", "hourly_rate"},
	types.TableMember:         {"member_id", "trainer_id", "first_name", "last_name", "contact_number", "email", "date_of_birth", "gender"},
	types.TableMembership:     {"membership_id", "member_id", "membership_type", "start_date", "end_date", "monthly_fee", "payment_status"},
	types.TableAttendance:     {"attendance_id", "member_id", "attendance_date", "check_in_time"},
	types.TableDoctor:         {"doctor_id", "first_name", "last_name", "specialization", "contact_number", "consultation_fee"},
	types.TablePatient:        {"patient_id", "doctor_id", "first_name", "last_name", "contact_number", "email", "date_of_birth", "gender", "blood_type", "allergies", "emergency_contact"},
	types.TableDisease:        {"disease_id", "name", "description", "severity"},
	types.TableMedicalHistory: {"history_id", "patient_id", "disease_id", "diagnosis_date", "status", "notes"},
	types.TableCheckin:        {"checkin_id", "patient_id", "doctor_id", "disease_id", "checkin_date", "checkin_time", "notes"},
}

// TransferReport counts the rows written or read per table.
type TransferReport map[string]int

// jsonlFile returns the file a table is exported to inside dir.
func jsonlFile(dir, table string) string {
	return filepath.Join(dir, table+".jsonl")
}

// Export writes every table of the attached variant to dir as
// <table>.jsonl, one row per line, ordered by primary key. Each file is
// replaced atomically.
func (b *Backend) Export(ctx context.Context, dir string) (TransferReport, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	report := TransferReport{}
	for _, table := range types.VariantTables[b.Variant()] {
		records, err := exportTable(ctx, db, table, tableColumns[table])
		if err != nil {
			return nil, err
		}
		if err := writeJSONL(jsonlFile(dir, table), records); err != nil {
			return nil, fmt.Errorf("writing %s.jsonl: %w", table, err)
		}
		report[table] = len(records)
	}
	return report, nil
}

func exportTable(ctx context.Context, db *sql.DB, table string, columns []string) ([]json.RawMessage, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(columns, ", "), table, columns[0])
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("exporting %s: %w", table, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		rec := make(map[string]any, len(columns))
		for i, col := range columns {
			if raw, ok := values[i].([]byte); ok {
				rec[col] = string(raw)
				continue
			}
			rec[col] = values[i]
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s row: %w", table, err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exporting %s: %w", table, err)
	}
	return records, nil
}

// Import replaces the contents of every table of the attached variant with
// the records in dir/<table>.jsonl. A missing file leaves its table empty.
// The whole import runs in one transaction: on error nothing changes.
// Malformed lines are skipped; rows that violate a constraint fail the
// import.
func (b *Backend) Import(ctx context.Context, dir string) (TransferReport, error) {
	tables := types.VariantTables[b.Variant()]
	report := TransferReport{}

	loaded := make(map[string][]json.RawMessage, len(tables))
	for _, table := range tables {
		records, err := readJSONL(jsonlFile(dir, table))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		loaded[table] = records
	}

	err := b.withTx(ctx, func(tx *sql.Tx) error {
		for i := len(tables) - 1; i >= 0; i-- {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+tables[i]); err != nil {
				return fmt.Errorf("clearing %s: %w", tables[i], err)
			}
		}
		for _, table := range tables {
			n, err := insertRecords(ctx, tx, table, tableColumns[table], loaded[table])
			if err != nil {
				return err
			}
			report[table] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// insertRecords inserts JSONL records into table. Keys outside columns are
// ignored; absent columns are inserted as NULL.
func insertRecords(ctx context.Context, tx *sql.Tx, table string, columns []string, records []json.RawMessage) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders))
	if err != nil {
		return 0, fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	n := 0
	for _, rec := range records {
		dec := json.NewDecoder(bytes.NewReader(rec))
		dec.UseNumber()
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			continue
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			args[i] = sqlValue(obj[col])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return n, fmt.Errorf("importing %s row %d: %w", table, n+1, err)
		}
		n++
	}
	return n, nil
}

// sqlValue converts a decoded JSON value to a driver value. Integral numbers
// stay integers so primary keys keep their identity; blank strings are NULL.
func sqlValue(v any) any {
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case map[string]any, []any:
		b, _ := json.Marshal(x)
		return string(b)
	default:
		return x
	}
}
