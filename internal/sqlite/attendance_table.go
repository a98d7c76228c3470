package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// AttendanceTable is the accessor for gym check-ins.
type AttendanceTable struct {
	tableBase
}

const attendanceSelect = `SELECT a.attendance_id, a.member_id, a.attendance_date, a.check_in_time,
    m.first_name, m.last_name
FROM attendance a
LEFT JOIN member m ON a.member_id = m.member_id`

func scanAttendance(s scanner) (types.Attendance, error) {
	var a types.Attendance
	err := s.Scan(&a.AttendanceID, &a.MemberID, &a.AttendanceDate, &a.CheckInTime, &a.FirstName, &a.LastName)
	return a, err
}

// List returns every attendance record, newest first.
func (at *AttendanceTable) List(ctx context.Context) ([]types.Attendance, error) {
	return list(ctx, at.tableBase, scanAttendance,
		attendanceSelect+" ORDER BY a.attendance_date DESC, a.check_in_time DESC")
}

// Today returns today's attendance records, newest first.
func (at *AttendanceTable) Today(ctx context.Context) ([]types.Attendance, error) {
	return list(ctx, at.tableBase, scanAttendance,
		attendanceSelect+" WHERE a.attendance_date = ? ORDER BY a.check_in_time DESC",
		at.backend.today())
}

// ForMember returns one member's attendance records, newest first.
func (at *AttendanceTable) ForMember(ctx context.Context, memberID int64) ([]types.Attendance, error) {
	return list(ctx, at.tableBase, scanAttendance,
		attendanceSelect+" WHERE a.member_id = ? ORDER BY a.attendance_date DESC, a.check_in_time DESC",
		memberID)
}

// Get returns one attendance record.
func (at *AttendanceTable) Get(ctx context.Context, id int64) (*types.Attendance, error) {
	return get(ctx, at.tableBase, scanAttendance, attendanceSelect+" WHERE a.attendance_id = ?", id)
}

// Delete removes an attendance record.
func (at *AttendanceTable) Delete(ctx context.Context, id int64) error {
	return at.remove(ctx, id)
}

// Record checks a member in for today and returns the new attendance id.
//
// The member must exist. The insert is conditional on the unique
// (member_id, attendance_date) index, so two concurrent check-ins for the
// same member and day produce one row and one *types.CheckedInError.
func (at *AttendanceTable) Record(ctx context.Context, req *types.AttendanceRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	memberID := req.MemberID.Int64
	date, stamp := at.backend.today(), at.backend.timestamp()

	var id int64
	err := at.backend.withTx(ctx, func(tx *sql.Tx) error {
		members := at.backend.members.tableBase
		ok, err := members.exists(ctx, tx, memberID)
		if err != nil {
			return err
		}
		if !ok {
			return members.notFound(memberID)
		}

		r, err := run(ctx, tx,
			`INSERT INTO attendance (member_id, attendance_date, check_in_time) VALUES (?, ?, ?)
ON CONFLICT (member_id, attendance_date) DO NOTHING`,
			memberID, date, stamp)
		if err != nil {
			return fmt.Errorf("recording attendance: %w", err)
		}
		if r.RowsAffected == 0 {
			return &types.CheckedInError{Entity: "Member", ID: memberID, Date: date}
		}
		id = r.InsertedID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
