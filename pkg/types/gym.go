package types

// Membership payment statuses.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentOverdue = "Overdue"
)

// PaymentStatuses lists the payment statuses in display order.
var PaymentStatuses = []string{PaymentPaid, PaymentPending, PaymentOverdue}

// Trainer is a gym trainer.
type Trainer struct {
	TrainerID      int64       `json:"trainer_id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Specialization NullString  `json:"specialization"`
	ContactNumber  NullString  `json:"contact_number"`
	HourlyRate     NullFloat64 `json:"hourly_rate"`
}

// Validate checks the fields required to create or replace a trainer.
func (t *Trainer) Validate() error {
	return required("First name and last name are required", present(t.FirstName), present(t.LastName))
}

// Member is a gym member, optionally assigned to a trainer.
type Member struct {
	MemberID      int64      `json:"member_id"`
	TrainerID     NullInt64  `json:"trainer_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	ContactNumber NullString `json:"contact_number"`
	Email         NullString `json:"email"`
	DateOfBirth   NullString `json:"date_of_birth"`
	Gender        NullString `json:"gender"`

	// Read-only, filled from the trainer join.
	TrainerFirstName NullString `json:"trainer_first_name"`
	TrainerLastName  NullString `json:"trainer_last_name"`
}

// Validate checks the fields required to create or replace a member.
func (m *Member) Validate() error {
	return required("First name and last name are required", present(m.FirstName), present(m.LastName))
}

// Membership is the single membership contract a member holds.
type Membership struct {
	MembershipID   int64       `json:"membership_id"`
	MemberID       NullInt64   `json:"member_id"`
	MembershipType string      `json:"membership_type"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	MonthlyFee     NullFloat64 `json:"monthly_fee"`
	PaymentStatus  string      `json:"payment_status"`

	// Read-only, filled from the member join.
	FirstName NullString `json:"first_name"`
	LastName  NullString `json:"last_name"`
}

// Validate checks the fields required to create or replace a membership.
func (m *Membership) Validate() error {
	return required("All fields are required",
		m.MemberID.Present(),
		present(m.MembershipType),
		present(m.StartDate),
		present(m.EndDate),
		m.MonthlyFee.Present(),
		present(m.PaymentStatus),
	)
}

// Attendance is one member check-in. A member has at most one per day.
type Attendance struct {
	AttendanceID   int64  `json:"attendance_id"`
	MemberID       int64  `json:"member_id"`
	AttendanceDate string `json:"attendance_date"`
	CheckInTime    string `json:"check_in_time"`

	// Read-only, filled from the member join.
	FirstName NullString `json:"first_name"`
	LastName  NullString `json:"last_name"`
}

// AttendanceRequest is the body of a gym check-in.
type AttendanceRequest struct {
	MemberID NullInt64 `json:"member_id"`
}

// Validate checks the fields required to record attendance.
func (r *AttendanceRequest) Validate() error {
	return required("Member ID is required", r.MemberID.Present())
}
