package muser

import (
	"strings"

	"boards-backend/pkg/idwrap"
)

type User struct {
	ID        idwrap.IDWrap
	Email     string
	FirstName string
	LastName  string
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
