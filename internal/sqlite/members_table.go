package sqlite

import (
	"context"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Compile-time interface check.
var _ types.Table[types.Member] = (*MembersTable)(nil)

// MembersTable is the accessor for gym members.
type MembersTable struct {
	tableBase
}

const memberSelect = `SELECT m.member_id, m.trainer_id, m.first_name, m.last_name, m.contact_number,
    m.email, m.date_of_birth, m.gender,
    t.first_name AS trainer_first_name, t.last_name AS trainer_last_name
FROM member m
LEFT JOIN trainer t ON m.trainer_id = t.trainer_id`

func scanMember(s scanner) (types.Member, error) {
	var m types.Member
	err := s.Scan(&m.MemberID, &m.TrainerID, &m.FirstName, &m.LastName, &m.ContactNumber,
		&m.Email, &m.DateOfBirth, &m.Gender, &m.TrainerFirstName, &m.TrainerLastName)
	return m, err
}

// List returns all members with their trainer's name, ordered by last and
// first name.
func (mt *MembersTable) List(ctx context.Context) ([]types.Member, error) {
	return list(ctx, mt.tableBase, scanMember, memberSelect+" ORDER BY m.last_name, m.first_name")
}

// Get returns one member with the trainer's name.
func (mt *MembersTable) Get(ctx context.Context, id int64) (*types.Member, error) {
	return get(ctx, mt.tableBase, scanMember, memberSelect+" WHERE m.member_id = ?", id)
}

// Create inserts a member and returns its id. A duplicate email fails with
// the store's unique-constraint error.
func (mt *MembersTable) Create(ctx context.Context, m *types.Member) (int64, error) {
	return mt.insert(ctx, m,
		`INSERT INTO member (first_name, last_name, trainer_id, contact_number, email, date_of_birth, gender)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.FirstName, m.LastName, m.TrainerID, m.ContactNumber, m.Email, m.DateOfBirth, m.Gender)
}

// Update replaces every writable column of a member.
func (mt *MembersTable) Update(ctx context.Context, id int64, m *types.Member) error {
	return mt.replace(ctx, id, m,
		`UPDATE member
SET first_name = ?, last_name = ?, trainer_id = ?, contact_number = ?, email = ?, date_of_birth = ?, gender = ?
WHERE member_id = ?`,
		m.FirstName, m.LastName, m.TrainerID, m.ContactNumber, m.Email, m.DateOfBirth, m.Gender, id)
}

// Delete removes a member. Their membership and attendance rows are kept.
func (mt *MembersTable) Delete(ctx context.Context, id int64) error {
	return mt.remove(ctx, id)
}
