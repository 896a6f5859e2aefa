package mnotification

import (
	"time"

	"boards-backend/pkg/idwrap"
)

// Notification is a delivered in-app notification row, one per
// recipient per event.
type Notification struct {
	ID          idwrap.IDWrap
	RecipientID idwrap.IDWrap
	ActorID     idwrap.IDWrap
	Label       string
	Description string
	Read        bool
	Created     time.Time
}
