package types

// SQLite table names.
const (
	TableTrainer        = "trainer"
	TableMember         = "member"
	TableMembership     = "membership"
	TableAttendance     = "attendance"
	TableDoctor         = "doctor"
	TablePatient        = "patient"
	TableDisease        = "disease"
	TableMedicalHistory = "medical_history"
	TableCheckin        = "checkin"
)

// VariantTables lists each variant's tables in dependency order: a table
// appears after every table it references.
var VariantTables = map[string][]string{
	VariantGym:      {TableTrainer, TableMember, TableMembership, TableAttendance},
	VariantHospital: {TableDoctor, TablePatient, TableDisease, TableMedicalHistory, TableCheckin},
}
