package sqlite

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Statistics queries are read-only aggregates recomputed on every call.
// Date windows end at the backend clock's current date, passed in as a
// parameter to SQLite's date() arithmetic.

// MembershipStats counts memberships by payment status and sums their fees.
func (b *Backend) MembershipStats(ctx context.Context) (*types.MembershipStats, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	var s types.MembershipStats
	err = db.QueryRowContext(ctx, `SELECT
    COUNT(*),
    COALESCE(SUM(CASE WHEN payment_status = ? THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN payment_status = ? THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN payment_status = ? THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(monthly_fee), 0.0)
FROM membership`,
		types.PaymentPaid, types.PaymentPending, types.PaymentOverdue,
	).Scan(&s.TotalMemberships, &s.PaidMemberships, &s.PendingMemberships, &s.OverdueMemberships, &s.TotalMonthlyRevenue)
	if err != nil {
		return nil, fmt.Errorf("membership stats: %w", err)
	}
	return &s, nil
}

// MembershipTypes returns the number of memberships per type.
func (b *Backend) MembershipTypes(ctx context.Context) ([]types.MembershipTypeCount, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	out, err := getMany(ctx, db, func(s scanner) (types.MembershipTypeCount, error) {
		var c types.MembershipTypeCount
		err := s.Scan(&c.MembershipType, &c.Count)
		return c, err
	}, "SELECT membership_type, COUNT(*) FROM membership GROUP BY membership_type ORDER BY membership_type")
	if err != nil {
		return nil, fmt.Errorf("membership types: %w", err)
	}
	return out, nil
}

// AttendanceStats counts attendance overall, today, and over the last 7 and
// 30 days.
func (b *Backend) AttendanceStats(ctx context.Context) (*types.AttendanceStats, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	today := b.today()
	var s types.AttendanceStats
	err = db.QueryRowContext(ctx, `SELECT
    COUNT(*),
    COUNT(DISTINCT member_id),
    COUNT(CASE WHEN attendance_date = ? THEN 1 END),
    COUNT(CASE WHEN attendance_date >= date(?, '-7 days') THEN 1 END),
    COUNT(CASE WHEN attendance_date >= date(?, '-30 days') THEN 1 END)
FROM attendance`,
		today, today, today,
	).Scan(&s.TotalAttendance, &s.UniqueMembers, &s.TodayAttendance, &s.WeekAttendance, &s.MonthAttendance)
	if err != nil {
		return nil, fmt.Errorf("attendance stats: %w", err)
	}
	return &s, nil
}

// ExpiringMemberships returns memberships ending within the next 30 days.
func (b *Backend) ExpiringMemberships(ctx context.Context) ([]types.Membership, error) {
	return b.memberships.Expiring(ctx)
}

// PatientStats counts patients by gender. Genders other than Male and
// Female, including unset ones, count as other.
func (b *Backend) PatientStats(ctx context.Context) (*types.PatientStats, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	var s types.PatientStats
	err = db.QueryRowContext(ctx, `SELECT
    COUNT(*),
    COALESCE(SUM(CASE WHEN lower(gender) = 'male' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN lower(gender) = 'female' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN gender IS NULL OR lower(gender) NOT IN ('male', 'female') THEN 1 ELSE 0 END), 0)
FROM patient`,
	).Scan(&s.TotalPatients, &s.MalePatients, &s.FemalePatients, &s.OtherPatients)
	if err != nil {
		return nil, fmt.Errorf("patient stats: %w", err)
	}
	return &s, nil
}

// DiseaseDistribution returns how many patients have each disease in their
// history. Diseases nobody has are included with a zero count.
func (b *Backend) DiseaseDistribution(ctx context.Context) ([]types.DiseaseCount, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	out, err := getMany(ctx, db, func(s scanner) (types.DiseaseCount, error) {
		var c types.DiseaseCount
		err := s.Scan(&c.DiseaseID, &c.Name, &c.Count)
		return c, err
	}, `SELECT d.disease_id, d.name, COUNT(h.history_id)
FROM disease d
LEFT JOIN medical_history h ON h.disease_id = d.disease_id
GROUP BY d.disease_id, d.name
ORDER BY COUNT(h.history_id) DESC, d.name`)
	if err != nil {
		return nil, fmt.Errorf("disease distribution: %w", err)
	}
	return out, nil
}

// CheckinStats counts check-ins overall, today, and over the last 7 and 30
// days.
func (b *Backend) CheckinStats(ctx context.Context) (*types.CheckinStats, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	today := b.today()
	var s types.CheckinStats
	err = db.QueryRowContext(ctx, `SELECT
    COUNT(*),
    COUNT(DISTINCT patient_id),
    COUNT(CASE WHEN checkin_date = ? THEN 1 END),
    COUNT(CASE WHEN checkin_date >= date(?, '-7 days') THEN 1 END),
    COUNT(CASE WHEN checkin_date >= date(?, '-30 days') THEN 1 END)
FROM checkin`,
		today, today, today,
	).Scan(&s.TotalCheckins, &s.UniquePatients, &s.TodayCheckins, &s.WeekCheckins, &s.MonthCheckins)
	if err != nil {
		return nil, fmt.Errorf("checkin stats: %w", err)
	}
	return &s, nil
}

// DoctorLoads returns the number of check-ins handled by each doctor.
func (b *Backend) DoctorLoads(ctx context.Context) ([]types.DoctorLoad, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	out, err := getMany(ctx, db, func(s scanner) (types.DoctorLoad, error) {
		var l types.DoctorLoad
		err := s.Scan(&l.DoctorID, &l.FirstName, &l.LastName, &l.CheckinCount)
		return l, err
	}, `SELECT d.doctor_id, d.first_name, d.last_name, COUNT(c.checkin_id)
FROM doctor d
LEFT JOIN checkin c ON c.doctor_id = d.doctor_id
GROUP BY d.doctor_id, d.first_name, d.last_name
ORDER BY COUNT(c.checkin_id) DESC, d.last_name, d.first_name`)
	if err != nil {
		return nil, fmt.Errorf("doctor loads: %w", err)
	}
	return out, nil
}
