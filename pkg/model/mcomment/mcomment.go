package mcomment

import (
	"time"

	"boards-backend/pkg/idwrap"
)

type Comment struct {
	ID        idwrap.IDWrap
	CardID    idwrap.IDWrap
	CreatedBy idwrap.IDWrap
	Content   string
}

func (c Comment) GetCreatedTime() time.Time {
	return c.ID.Time()
}
