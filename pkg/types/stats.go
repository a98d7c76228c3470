package types

// MembershipStats summarizes memberships by payment status.
type MembershipStats struct {
	TotalMemberships    int64   `json:"total_memberships"`
	PaidMemberships     int64   `json:"paid_memberships"`
	PendingMemberships  int64   `json:"pending_memberships"`
	OverdueMemberships  int64   `json:"overdue_memberships"`
	TotalMonthlyRevenue float64 `json:"total_monthly_revenue"`
}

// MembershipTypeCount is one slice of the membership type distribution.
type MembershipTypeCount struct {
	MembershipType string `json:"membership_type"`
	Count          int64  `json:"count"`
}

// AttendanceStats counts check-ins over fixed windows ending today.
type AttendanceStats struct {
	TotalAttendance int64 `json:"total_attendance"`
	UniqueMembers   int64 `json:"unique_members"`
	TodayAttendance int64 `json:"today_attendance"`
	WeekAttendance  int64 `json:"week_attendance"`
	MonthAttendance int64 `json:"month_attendance"`
}

// PatientStats counts patients by recorded gender.
type PatientStats struct {
	TotalPatients  int64 `json:"total_patients"`
	MalePatients   int64 `json:"male_patients"`
	FemalePatients int64 `json:"female_patients"`
	OtherPatients  int64 `json:"other_patients"`
}

// DiseaseCount is the number of patients diagnosed with a disease.
type DiseaseCount struct {
	DiseaseID int64  `json:"disease_id"`
	Name      string `json:"name"`
	Count     int64  `json:"count"`
}

// CheckinStats counts hospital check-ins over fixed windows ending today.
type CheckinStats struct {
	TotalCheckins  int64 `json:"total_checkins"`
	UniquePatients int64 `json:"unique_patients"`
	TodayCheckins  int64 `json:"today_checkins"`
	WeekCheckins   int64 `json:"week_checkins"`
	MonthCheckins  int64 `json:"month_checkins"`
}

// DoctorLoad is the number of check-ins handled by a doctor.
type DoctorLoad struct {
	DoctorID     int64  `json:"doctor_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CheckinCount int64  `json:"checkin_count"`
}
