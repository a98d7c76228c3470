package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.Membership] = (*MembershipsTable)(nil)

// MembershipsTable is the accessor for gym memberships.
type MembershipsTable struct {
	tableBase
}

const membershipSelect = `SELECT ms.membership_id, ms.member_id, ms.membership_type, ms.start_date, ms.end_date,
    ms.monthly_fee, ms.payment_status, m.first_name, m.last_name
FROM membership ms
LEFT JOIN member m ON ms.member_id = m.member_id`

func scanMembership(s scanner) (types.Membership, error) {
	var ms types.Membership
	err := s.Scan(&ms.MembershipID, &ms.MemberID, &ms.MembershipType, &ms.StartDate, &ms.EndDate,
		&ms.MonthlyFee, &ms.PaymentStatus, &ms.FirstName, &ms.LastName)
	return ms, err
}

// List returns all memberships with the member's name, ordered by end date.
func (mt *MembershipsTable) List(ctx context.Context) ([]types.Membership, error) {
	return list(ctx, mt.tableBase, scanMembership, membershipSelect+" ORDER BY ms.end_date")
}

// Get returns one membership with the member's name.
func (mt *MembershipsTable) Get(ctx context.Context, id int64) (*types.Membership, error) {
	return get(ctx, mt.tableBase, scanMembership, membershipSelect+" WHERE ms.membership_id = ?", id)
}

// ForMember returns the membership held by a member.
func (mt *MembershipsTable) ForMember(ctx context.Context, memberID int64) (*types.Membership, error) {
	db, err := mt.backend.conn()
	if err != nil {
		return nil, err
	}
	ms, err := getOne(ctx, db, scanMembership,
		"SELECT ms.membership_id, ms.member_id, ms.membership_type, ms.start_date, ms.end_date,"+
			" ms.monthly_fee, ms.payment_status, NULL, NULL FROM membership ms WHERE ms.member_id = ?",
		memberID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, &types.NotFoundError{Entity: mt.entity, ID: memberID}
	}
	if err != nil {
		return nil, fmt.Errorf("getting membership of member %d: %w", memberID, err)
	}
	return &ms, nil
}

// Expiring returns memberships ending between today and 30 days from today,
// ordered by end date.
func (mt *MembershipsTable) Expiring(ctx context.Context) ([]types.Membership, error) {
	today := mt.backend.today()
	return list(ctx, mt.tableBase, scanMembership,
		membershipSelect+" WHERE ms.end_date BETWEEN ? AND date(?, '+30 days') ORDER BY ms.end_date",
		today, today)
}

// Create inserts a membership and returns its id. A second membership for
// the same member fails with the store's unique-constraint error.
func (mt *MembershipsTable) Create(ctx context.Context, ms *types.Membership) (int64, error) {
	return mt.insert(ctx, ms,
		`INSERT INTO membership (member_id, membership_type, start_date, end_date, monthly_fee, payment_status)
VALUES (?, ?, ?, ?, ?, ?)`,
		ms.MemberID, ms.MembershipType, ms.StartDate, ms.EndDate, ms.MonthlyFee, ms.PaymentStatus)
}

// Update replaces every writable column of a membership.
func (mt *MembershipsTable) Update(ctx context.Context, id int64, ms *types.Membership) error {
	return mt.replace(ctx, id, ms,
		`UPDATE membership
SET member_id = ?, membership_type = ?, start_date = ?, end_date = ?, monthly_fee = ?, payment_status = ?
WHERE membership_id = ?`,
		ms.MemberID, ms.MembershipType, ms.StartDate, ms.EndDate, ms.MonthlyFee, ms.PaymentStatus, id)
}

// Delete removes a membership.
func (mt *MembershipsTable) Delete(ctx context.Context, id int64) error {
	return mt.remove(ctx, id)
}
