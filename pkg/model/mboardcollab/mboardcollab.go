package mboardcollab

import (
	"errors"

	"boards-backend/pkg/idwrap"
)

type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

var (
	ErrBothUserAndInvitedUser = errors.New("both user and invited_user cannot be set together")
	ErrNoUserOrInvitedUser    = errors.New("either user or invited_user must be set")
)

// BoardCollaborator binds a board to exactly one of a user or an
// invited user. Uniqueness per (board, user) and (board, invited_user)
// is enforced by the store.
type BoardCollaborator struct {
	ID            idwrap.IDWrap
	BoardID       idwrap.IDWrap
	UserID        *idwrap.IDWrap
	InvitedUserID *idwrap.IDWrap
	Permission    Permission
}

func (bc BoardCollaborator) Validate() error {
	if bc.UserID != nil && bc.InvitedUserID != nil {
		return ErrBothUserAndInvitedUser
	}
	if bc.UserID == nil && bc.InvitedUserID == nil {
		return ErrNoUserOrInvitedUser
	}
	return nil
}
