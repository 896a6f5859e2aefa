package minviteduser

import "boards-backend/pkg/idwrap"

// InvitedUser represents a participant invited to collaborate before
// they have an account of their own. UserID is set when the invite
// matched an existing user by email.
type InvitedUser struct {
	ID        idwrap.IDWrap
	FirstName string
	LastName  string
	Email     string
	UserID    *idwrap.IDWrap
	AccountID idwrap.IDWrap
	CreatedBy idwrap.IDWrap
}
