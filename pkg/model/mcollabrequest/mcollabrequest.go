package mcollabrequest

import (
	"errors"

	"boards-backend/pkg/idwrap"
)

var ErrNoUserOrEmail = errors.New("either user or email must be set")

// BoardCollaboratorRequest is a pending ask to join a board. The store
// keeps at most one request per (email, board) and per (user, board).
type BoardCollaboratorRequest struct {
	ID        idwrap.IDWrap
	FirstName string
	LastName  string
	Email     string
	UserID    *idwrap.IDWrap
	BoardID   idwrap.IDWrap
	Message   string
}

func (r BoardCollaboratorRequest) Validate() error {
	if r.UserID == nil && r.Email == "" {
		return ErrNoUserOrEmail
	}
	return nil
}
