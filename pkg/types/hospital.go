package types

// Doctor is a hospital doctor.
type Doctor struct {
	DoctorID        int64       `json:"doctor_id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Specialization  NullString  `json:"specialization"`
	ContactNumber   NullString  `json:"contact_number"`
	ConsultationFee NullFloat64 `json:"consultation_fee"`
}

// Validate checks the fields required to create or replace a doctor.
func (d *Doctor) Validate() error {
	return required("First name and last name are required", present(d.FirstName), present(d.LastName))
}

// Patient is a hospital patient, optionally assigned a primary doctor.
type Patient struct {
	PatientID        int64      `json:"patient_id"`
	DoctorID         NullInt64  `json:"doctor_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	ContactNumber    NullString `json:"contact_number"`
	Email            NullString `json:"email"`
	DateOfBirth      NullString `json:"date_of_birth"`
	Gender           NullString `json:"gender"`
	BloodType        NullString `json:"blood_type"`
	Allergies        NullString `json:"allergies"`
	EmergencyContact NullString `json:"emergency_contact"`

	// Read-only, filled from the doctor join.
	DoctorFirstName NullString `json:"doctor_first_name"`
	DoctorLastName  NullString `json:"doctor_last_name"`
}

// Validate checks the fields required to create or replace a patient.
func (p *Patient) Validate() error {
	return required("First name and last name are required", present(p.FirstName), present(p.LastName))
}

// Disease is a reference entry that patients can be diagnosed with.
type Disease struct {
	DiseaseID   int64      `json:"disease_id"`
	Name        string     `json:"name"`
	Description NullString `json:"description"`
	Severity    NullString `json:"severity"`
}

// Validate checks the fields required to create or replace a disease.
func (d *Disease) Validate() error {
	return required("Disease name is required", present(d.Name))
}

// MedicalHistory links a patient to a diagnosed disease.
type MedicalHistory struct {
	HistoryID     int64      `json:"history_id"`
	PatientID     NullInt64  `json:"patient_id"`
	DiseaseID     NullInt64  `json:"disease_id"`
	DiagnosisDate NullString `json:"diagnosis_date"`
	Status        NullString `json:"status"`
	Notes         NullString `json:"notes"`

	// Read-only, filled from the patient and disease joins.
	FirstName   NullString `json:"first_name"`
	LastName    NullString `json:"last_name"`
	DiseaseName NullString `json:"disease_name"`
}

// Validate checks the fields required to create or replace a history entry.
func (h *MedicalHistory) Validate() error {
	return required("Patient ID and disease ID are required", h.PatientID.Present(), h.DiseaseID.Present())
}

// Checkin is one patient visit. A patient has at most one per day.
type Checkin struct {
	CheckinID   int64      `json:"checkin_id"`
	PatientID   int64      `json:"patient_id"`
	DoctorID    NullInt64  `json:"doctor_id"`
	DiseaseID   NullInt64  `json:"disease_id"`
	CheckinDate string     `json:"checkin_date"`
	CheckinTime string     `json:"checkin_time"`
	Notes       NullString `json:"notes"`

	// Read-only, filled from the patient, doctor and disease joins.
	FirstName       NullString `json:"first_name"`
	LastName        NullString `json:"last_name"`
	DoctorFirstName NullString `json:"doctor_first_name"`
	DoctorLastName  NullString `json:"doctor_last_name"`
	DiseaseName     NullString `json:"disease_name"`
}

// CheckinRequest is the body of a hospital check-in.
type CheckinRequest struct {
	PatientID NullInt64  `json:"patient_id"`
	DoctorID  NullInt64  `json:"doctor_id"`
	DiseaseID NullInt64  `json:"disease_id"`
	Notes     NullString `json:"notes"`
}

// Validate checks the fields required to record a check-in.
func (r *CheckinRequest) Validate() error {
	return required("Patient ID is required", r.PatientID.Present())
}
