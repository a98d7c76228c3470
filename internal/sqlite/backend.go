// Package sqlite implements the SQLite storage backend for frontdesk.
// One Backend owns one database file and one connection; tables, statistics
// and JSONL export/import all run through it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Date layouts matching SQLite's date() and datetime() output.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Backend owns the SQLite connection for one variant. It is created detached;
// Attach opens the file and prepares the schema, Detach closes it.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	now      func() time.Time

	trainers    *TrainersTable
	members     *MembersTable
	memberships *MembershipsTable
	attendance  *AttendanceTable

	doctors   *DoctorsTable
	patients  *PatientsTable
	diseases  *DiseasesTable
	histories *HistoryTable
	checkins  *CheckinsTable
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock replaces the wall clock used for check-in dates and the
// date windows of the statistics queries.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	b.trainers = &TrainersTable{tableBase{b, types.TableTrainer, "Trainer", "trainer_id"}}
	b.members = &MembersTable{tableBase{b, types.TableMember, "Member", "member_id"}}
	b.memberships = &MembershipsTable{tableBase{b, types.TableMembership, "Membership", "membership_id"}}
	b.attendance = &AttendanceTable{tableBase{b, types.TableAttendance, "Attendance record", "attendance_id"}}
	b.doctors = &DoctorsTable{tableBase{b, types.TableDoctor, "Doctor", "doctor_id"}}
	b.patients = &PatientsTable{tableBase{b, types.TablePatient, "Patient", "patient_id"}}
	b.diseases = &DiseasesTable{tableBase{b, types.TableDisease, "Disease", "disease_id"}}
	b.histories = &HistoryTable{tableBase{b, types.TableMedicalHistory, "Medical history record", "history_id"}}
	b.checkins = &CheckinsTable{tableBase{b, types.TableCheckin, "Checkin", "checkin_id"}}
	return b
}

// Attach opens the variant's database file, creating DataDir if needed,
// applies the schema and seeds reference rows. Every step is idempotent, so
// attaching to an existing file keeps its data.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dbPath := config.DatabasePath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	// All statements share a single connection, so every statement and
	// transaction is serialized by the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return fmt.Errorf("setting busy timeout: %w", err)
	}
	if err := applySchema(ctx, db, config.Variant); err != nil {
		db.Close()
		return err
	}
	if err := seed(ctx, db, config.Variant); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the connection. After Detach, all operations return
// ErrBackendDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	db := b.db
	b.db = nil
	b.config = types.Config{}
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// Variant returns the attached variant, or "" when detached.
func (b *Backend) Variant() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.Variant
}

// Path returns the database file of the attached backend.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return ""
	}
	return b.config.DatabasePath()
}

// conn returns the open database or ErrBackendDetached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	return b.db, nil
}

// withTx runs fn in a transaction, committing when fn returns nil.
// Inside fn every statement must go through tx: the pool has one connection
// and the transaction holds it.
func (b *Backend) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// today returns the backend clock's current UTC date.
func (b *Backend) today() string {
	return b.now().UTC().Format(dateLayout)
}

// timestamp returns the backend clock's current UTC time.
func (b *Backend) timestamp() string {
	return b.now().UTC().Format(dateTimeLayout)
}

// Table accessors. Each returns the accessor for one entity; using an
// accessor of the other variant fails with a "no such table" store error.

func (b *Backend) Trainers() *TrainersTable       { return b.trainers }
func (b *Backend) Members() *MembersTable         { return b.members }
func (b *Backend) Memberships() *MembershipsTable { return b.memberships }
func (b *Backend) Attendance() *AttendanceTable   { return b.attendance }
func (b *Backend) Doctors() *DoctorsTable         { return b.doctors }
func (b *Backend) Patients() *PatientsTable       { return b.patients }
func (b *Backend) Diseases() *DiseasesTable       { return b.diseases }
func (b *Backend) MedicalHistory() *HistoryTable  { return b.histories }
func (b *Backend) Checkins() *CheckinsTable       { return b.checkins }
