package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Gym schema DDL. Dates are TEXT in SQLite's date()/datetime() formats so the
// driver hands them back as the strings clients sent.
const (
	createTrainer = `CREATE TABLE IF NOT EXISTS trainer (
    trainer_id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    specialization TEXT,
    contact_number TEXT,
    hourly_rate REAL
);`

	createMember = `CREATE TABLE IF NOT EXISTS member (
    member_id INTEGER PRIMARY KEY AUTOINCREMENT,
    trainer_id INTEGER,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    contact_number TEXT,
    email TEXT UNIQUE,
    date_of_birth TEXT,
    gender TEXT,
    FOREIGN KEY (trainer_id) REFERENCES trainer(trainer_id)
);`

	createMembership = `CREATE TABLE IF NOT EXISTS membership (
    membership_id INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id INTEGER UNIQUE,
    membership_type TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    monthly_fee REAL NOT NULL,
    payment_status TEXT NOT NULL,
    FOREIGN KEY (member_id) REFERENCES member(member_id)
);`

	createAttendance = `CREATE TABLE IF NOT EXISTS attendance (
    attendance_id INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id INTEGER NOT NULL,
    attendance_date TEXT NOT NULL DEFAULT (date('now')),
    check_in_time TEXT NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (member_id) REFERENCES member(member_id)
);`
)

// Hospital schema DDL.
const (
	createDoctor = `CREATE TABLE IF NOT EXISTS doctor (
    doctor_id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    specialization TEXT,
    contact_number TEXT,
    consultation_fee REAL
);`

	createPatient = `CREATE TABLE IF NOT EXISTS patient (
    patient_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doctor_id INTEGER,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    contact_number TEXT,
    email TEXT UNIQUE,
    date_of_birth TEXT,
    gender TEXT,
    blood_type TEXT,
    allergies TEXT,
    emergency_contact TEXT,
    FOREIGN KEY (doctor_id) REFERENCES doctor(doctor_id)
);`

	createDisease = `CREATE TABLE IF NOT EXISTS disease (
    disease_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    description TEXT,
    severity TEXT
);`

	createMedicalHistory = `CREATE TABLE IF NOT EXISTS medical_history (
    history_id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    disease_id INTEGER NOT NULL,
    diagnosis_date TEXT,
    status TEXT,
    notes TEXT,
    UNIQUE (patient_id, disease_id),
    FOREIGN KEY (patient_id) REFERENCES patient(patient_id),
    FOREIGN KEY (disease_id) REFERENCES disease(disease_id)
);`

	createCheckin = `CREATE TABLE IF NOT EXISTS checkin (
    checkin_id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    doctor_id INTEGER,
    disease_id INTEGER,
    checkin_date TEXT NOT NULL DEFAULT (date('now')),
    checkin_time TEXT NOT NULL DEFAULT (datetime('now')),
    notes TEXT,
    FOREIGN KEY (patient_id) REFERENCES patient(patient_id),
    FOREIGN KEY (doctor_id) REFERENCES doctor(doctor_id),
    FOREIGN KEY (disease_id) REFERENCES disease(disease_id)
);`
)

// Index DDL. The unique per-day indexes back the conditional check-in insert.
const (
	idxAttendanceMemberDate = `CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_member_date ON attendance(member_id, attendance_date);`
	idxAttendanceDate       = `CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(attendance_date);`
	idxMemberTrainer        = `CREATE INDEX IF NOT EXISTS idx_member_trainer ON member(trainer_id);`
	idxMembershipEndDate    = `CREATE INDEX IF NOT EXISTS idx_membership_end_date ON membership(end_date);`

	idxCheckinPatientDate = `CREATE UNIQUE INDEX IF NOT EXISTS idx_checkin_patient_date ON checkin(patient_id, checkin_date);`
	idxCheckinDate        = `CREATE INDEX IF NOT EXISTS idx_checkin_date ON checkin(checkin_date);`
	idxCheckinDoctor      = `CREATE INDEX IF NOT EXISTS idx_checkin_doctor ON checkin(doctor_id);`
	idxPatientDoctor      = `CREATE INDEX IF NOT EXISTS idx_patient_doctor ON patient(doctor_id);`
	idxHistoryDisease     = `CREATE INDEX IF NOT EXISTS idx_medical_history_disease ON medical_history(disease_id);`
)

// schemaDDL lists each variant's CREATE TABLE statements in dependency order.
var schemaDDL = map[string][]string{
	types.VariantGym: {
		createTrainer,
		createMember,
		createMembership,
		createAttendance,
	},
	types.VariantHospital: {
		createDoctor,
		createPatient,
		createDisease,
		createMedicalHistory,
		createCheckin,
	},
}

// indexDDL lists each variant's CREATE INDEX statements.
var indexDDL = map[string][]string{
	types.VariantGym: {
		idxAttendanceMemberDate,
		idxAttendanceDate,
		idxMemberTrainer,
		idxMembershipEndDate,
	},
	types.VariantHospital: {
		idxCheckinPatientDate,
		idxCheckinDate,
		idxCheckinDoctor,
		idxPatientDoctor,
		idxHistoryDisease,
	},
}

// applySchema creates the variant's tables and indexes if they are absent.
func applySchema(ctx context.Context, db *sql.DB, variant string) error {
	for _, ddl := range schemaDDL[variant] {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating %s schema: %w", variant, err)
		}
	}
	for _, ddl := range indexDDL[variant] {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating %s index: %w", variant, err)
		}
	}
	return nil
}
