// Tests for JSONL export and import.
package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock("2026-09-15")
	src := setupBackend(t, types.VariantGym, WithClock(clock.Now))

	mid, err := src.Members().Create(ctx, &types.Member{
		FirstName: "Eve",
		LastName:  "Stone",
		TrainerID: types.Int64(2),
		Email:     types.String("eve@example.com"),
	})
	require.NoError(t, err)
	_, err = src.Memberships().Create(ctx, &types.Membership{
		MemberID:       types.Int64(mid),
		MembershipType: "Annual",
		StartDate:      "2026-01-01",
		EndDate:        "2026-12-31",
		MonthlyFee:     types.Float64(42.75),
		PaymentStatus:  types.PaymentPaid,
	})
	require.NoError(t, err)
	_, err = src.Attendance().Record(ctx, &types.AttendanceRequest{MemberID: types.Int64(mid)})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "export")
	report, err := src.Export(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, TransferReport{
		types.TableTrainer:    3,
		types.TableMember:     1,
		types.TableMembership: 1,
		types.TableAttendance: 1,
	}, report)

	data, err := os.ReadFile(filepath.Join(dir, "member.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"email":"eve@example.com"`)
	assert.Contains(t, string(data), `"contact_number":null`)

	dst := setupBackend(t, types.VariantGym, WithClock(clock.Now))
	_, err = dst.Members().Create(ctx, &types.Member{FirstName: "Gone", LastName: "Soon"})
	require.NoError(t, err)

	report, err = dst.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, report[types.TableMember])

	members, err := dst.Members().List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1, "import replaces existing rows")
	assert.Equal(t, mid, members[0].MemberID)
	assert.Equal(t, "eve@example.com", members[0].Email.String)
	assert.Equal(t, int64(2), members[0].TrainerID.Int64)

	ms, err := dst.Memberships().ForMember(ctx, mid)
	require.NoError(t, err)
	assert.Equal(t, 42.75, ms.MonthlyFee.Float64)

	_, err = dst.Attendance().Record(ctx, &types.AttendanceRequest{MemberID: types.Int64(mid)})
	assert.ErrorIs(t, err, types.ErrAlreadyCheckedIn, "imported attendance keeps its date")
}

func TestImportSkipsMalformedLinesAndMissingFiles(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t, types.VariantHospital)

	dir := t.TempDir()
	lines := strings.Join([]string{
		`{"patient_id": 7, "first_name": "Lia", "last_name": "Moss", "doctor_id": "", "extra": true}`,
		`not json`,
		``,
		`{"patient_id": 8, "first_name": "Ned", "last_name": "Hart"}`,
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patient.jsonl"), []byte(lines), 0o644))

	report, err := b.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, report[types.TablePatient])
	assert.Equal(t, 0, report[types.TableDoctor], "missing file empties its table")
	assert.Equal(t, 0, countRows(t, b, types.TableDisease))

	p, err := b.Patients().Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Lia", p.FirstName)
}

func TestImportConstraintViolationChangesNothing(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t, types.VariantGym)

	dir := t.TempDir()
	lines := `{"member_id": 1, "first_name": "A", "last_name": "B", "email": "x@example.com"}
{"member_id": 2, "first_name": "C", "last_name": "D", "email": "x@example.com"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "member.jsonl"), []byte(lines), 0o644))

	_, err := b.Import(ctx, dir)
	require.Error(t, err)
	assert.Equal(t, 3, countRows(t, b, types.TableTrainer), "failed import rolls back")
	assert.Equal(t, 0, countRows(t, b, types.TableMember))
}
