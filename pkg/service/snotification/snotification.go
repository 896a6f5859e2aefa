package snotification

import (
	"context"
	"database/sql"
	"time"

	"boards-backend/pkg/dbtime"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mnotification"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoNotificationFound = sql.ErrNoRows

type NotificationService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) NotificationService {
	return NotificationService{queries: queries}
}

func (ns NotificationService) TX(tx *sql.Tx) NotificationService {
	return NotificationService{queries: ns.queries.WithTx(tx)}
}

func ConvertToDBNotification(n mnotification.Notification) gen.Notification {
	return gen.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Label:       n.Label,
		Description: n.Description,
		Read:        n.Read,
		Created:     n.Created.Unix(),
	}
}

func ConvertToModelNotification(n gen.Notification) mnotification.Notification {
	return mnotification.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Label:       n.Label,
		Description: n.Description,
		Read:        n.Read,
		Created:     dbtime.DBTime(time.Unix(n.Created, 0)),
	}
}

func (ns NotificationService) Create(ctx context.Context, n *mnotification.Notification) error {
	if n.Created.IsZero() {
		n.Created = dbtime.DBNow()
	}
	dbNotification := ConvertToDBNotification(*n)
	return ns.queries.CreateNotification(ctx, gen.CreateNotificationParams{
		ID:          dbNotification.ID,
		RecipientID: dbNotification.RecipientID,
		ActorID:     dbNotification.ActorID,
		Label:       dbNotification.Label,
		Description: dbNotification.Description,
		Read:        dbNotification.Read,
		Created:     dbNotification.Created,
	})
}

func (ns NotificationService) Get(ctx context.Context, id idwrap.IDWrap) (*mnotification.Notification, error) {
	notification, err := ns.queries.GetNotification(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoNotificationFound
		}
		return nil, err
	}
	converted := ConvertToModelNotification(notification)
	return &converted, nil
}

func (ns NotificationService) GetByRecipientID(ctx context.Context, recipientID idwrap.IDWrap) ([]mnotification.Notification, error) {
	rows, err := ns.queries.GetNotificationsByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	notifications := make([]mnotification.Notification, len(rows))
	for i, row := range rows {
		notifications[i] = ConvertToModelNotification(row)
	}
	return notifications, nil
}

func (ns NotificationService) MarkRead(ctx context.Context, id idwrap.IDWrap) error {
	return ns.queries.MarkNotificationRead(ctx, id)
}

func (ns NotificationService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return ns.queries.DeleteNotification(ctx, id)
}
