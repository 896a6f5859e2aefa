// Package notify fans notification events out to email and in-app
// channels according to the notification type catalog.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"boards-backend/pkg/emailclient"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mnotification"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/notifytypes"
)

var ErrUnknownLabel = errors.New("unknown notification label")

// Extra carries per-event context for rendering.
type Extra struct {
	Description string
	Context     map[string]string
}

// InAppSink persists in-app notification rows. snotification satisfies
// this.
type InAppSink interface {
	Create(ctx context.Context, n *mnotification.Notification) error
}

type Dispatcher struct {
	email emailclient.EmailClient
	inApp InAppSink
	from  string
	log   *slog.Logger
}

func NewDispatcher(email emailclient.EmailClient, inApp InAppSink, log *slog.Logger) Dispatcher {
	return Dispatcher{
		email: email,
		inApp: inApp,
		from:  emailclient.DefaultEmailFrom,
		log:   log,
	}
}

// Send delivers one event to every recipient on the channels the
// catalog enables for the label. An empty recipient set is a no-op.
// Delivery failures are returned to the caller, never swallowed.
func (d Dispatcher) Send(ctx context.Context, actor muser.User, recipients []muser.User, label string, extra Extra) error {
	nt, ok := notifytypes.Get(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	if len(recipients) == 0 {
		return nil
	}

	description := extra.Description
	if description == "" {
		description = nt.Description
	}

	if nt.Email {
		subject := nt.Display
		body := fmt.Sprintf("%s %s", actor.FullName(), description)
		for _, recipient := range recipients {
			err := d.email.SendEmailText(subject, body, d.from, []string{recipient.Email})
			if err != nil {
				return fmt.Errorf("send %s email to %s: %w", label, recipient.Email, err)
			}
		}
	}

	if nt.InApp {
		for _, recipient := range recipients {
			notification := mnotification.Notification{
				ID:          idwrap.NewNow(),
				RecipientID: recipient.ID,
				ActorID:     actor.ID,
				Label:       label,
				Description: description,
			}
			err := d.inApp.Create(ctx, &notification)
			if err != nil {
				return fmt.Errorf("create %s in-app notification: %w", label, err)
			}
		}
	}

	d.log.DebugContext(ctx, "notification dispatched",
		slog.String("label", label),
		slog.Int("recipients", len(recipients)),
		slog.Bool("email", nt.Email),
		slog.Bool("in_app", nt.InApp),
	)
	return nil
}
