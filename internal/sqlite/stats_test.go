// Tests for the statistics queries.
package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// insertAttendance writes an attendance row for a past day directly.
func insertAttendance(t *testing.T, b *Backend, memberID int64, day string) {
	t.Helper()
	db, err := b.conn()
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO attendance (member_id, attendance_date, check_in_time) VALUES (?, ?, ?)",
		memberID, day, day+" 08:00:00")
	require.NoError(t, err)
}

func TestMembershipStats(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t, types.VariantGym)

	empty, err := b.MembershipStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.MembershipStats{}, *empty, "empty table reports zeros")

	statuses := []string{types.PaymentPaid, types.PaymentPaid, types.PaymentPaid, types.PaymentPending, types.PaymentOverdue}
	kinds := []string{"Monthly", "Monthly", "Annual", "Monthly", "Quarterly"}
	for i, status := range statuses {
		mid, err := b.Members().Create(ctx, &types.Member{FirstName: "M", LastName: string(rune('A' + i))})
		require.NoError(t, err)
		_, err = b.Memberships().Create(ctx, &types.Membership{
			MemberID:       types.Int64(mid),
			MembershipType: kinds[i],
			StartDate:      "2026-01-01",
			EndDate:        "2026-12-31",
			MonthlyFee:     types.Float64(10.5),
			PaymentStatus:  status,
		})
		require.NoError(t, err)
	}

	s, err := b.MembershipStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.TotalMemberships)
	assert.Equal(t, int64(3), s.PaidMemberships)
	assert.Equal(t, int64(1), s.PendingMemberships)
	assert.Equal(t, int64(1), s.OverdueMemberships)
	assert.InDelta(t, 52.5, s.TotalMonthlyRevenue, 0.001)

	byType, err := b.MembershipTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.MembershipTypeCount{
		{MembershipType: "Annual", Count: 1},
		{MembershipType: "Monthly", Count: 3},
		{MembershipType: "Quarterly", Count: 1},
	}, byType)
}

func TestAttendanceStats(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock("2026-08-31")
	b := setupBackend(t, types.VariantGym, WithClock(clock.Now))

	m1, err := b.Members().Create(ctx, &types.Member{FirstName: "One", LastName: "A"})
	require.NoError(t, err)
	m2, err := b.Members().Create(ctx, &types.Member{FirstName: "Two", LastName: "B"})
	require.NoError(t, err)

	insertAttendance(t, b, m1, "2026-08-31") // today
	insertAttendance(t, b, m2, "2026-08-31") // today
	insertAttendance(t, b, m1, "2026-08-24") // exactly 7 days ago
	insertAttendance(t, b, m1, "2026-08-10") // within 30 days
	insertAttendance(t, b, m2, "2026-08-01") // exactly 30 days ago
	insertAttendance(t, b, m2, "2026-06-15") // older

	s, err := b.AttendanceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), s.TotalAttendance)
	assert.Equal(t, int64(2), s.UniqueMembers)
	assert.Equal(t, int64(2), s.TodayAttendance)
	assert.Equal(t, int64(3), s.WeekAttendance)
	assert.Equal(t, int64(5), s.MonthAttendance)
}

func TestHospitalStats(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock("2026-02-20")
	b := setupBackend(t, types.VariantHospital, WithClock(clock.Now))

	genders := []string{"Male", "female", "Female", "", "Other"}
	var patients []int64
	for i, g := range genders {
		id, err := b.Patients().Create(ctx, &types.Patient{
			FirstName: "P",
			LastName:  string(rune('A' + i)),
			Gender:    types.String(g),
		})
		require.NoError(t, err)
		patients = append(patients, id)
	}

	ps, err := b.PatientStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.PatientStats{TotalPatients: 5, MalePatients: 1, FemalePatients: 2, OtherPatients: 2}, *ps)

	diseases, err := b.Diseases().List(ctx)
	require.NoError(t, err)
	asthma := diseases[0] // alphabetical
	require.Equal(t, "Asthma", asthma.Name)
	for _, pid := range patients[:3] {
		_, err := b.MedicalHistory().Create(ctx, &types.MedicalHistory{
			PatientID: types.Int64(pid),
			DiseaseID: types.Int64(asthma.DiseaseID),
		})
		require.NoError(t, err)
	}

	dist, err := b.DiseaseDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, dist, 5, "diseases without patients are listed")
	assert.Equal(t, "Asthma", dist[0].Name)
	assert.Equal(t, int64(3), dist[0].Count)
	assert.Equal(t, int64(0), dist[1].Count)

	doctors, err := b.Doctors().List(ctx)
	require.NoError(t, err)
	busy := doctors[1]
	for _, pid := range patients[:2] {
		_, err := b.Checkins().Record(ctx, &types.CheckinRequest{
			PatientID: types.Int64(pid),
			DoctorID:  types.Int64(busy.DoctorID),
		})
		require.NoError(t, err)
	}
	clock.set("2026-02-21")
	_, err = b.Checkins().Record(ctx, &types.CheckinRequest{PatientID: types.Int64(patients[0])})
	require.NoError(t, err)

	cs, err := b.CheckinStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.CheckinStats{
		TotalCheckins:  3,
		UniquePatients: 2,
		TodayCheckins:  1,
		WeekCheckins:   3,
		MonthCheckins:  3,
	}, *cs)

	loads, err := b.DoctorLoads(ctx)
	require.NoError(t, err)
	require.Len(t, loads, 3)
	assert.Equal(t, busy.DoctorID, loads[0].DoctorID)
	assert.Equal(t, int64(2), loads[0].CheckinCount)
	assert.Equal(t, int64(0), loads[2].CheckinCount)
}
