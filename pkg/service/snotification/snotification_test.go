package snotification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mnotification"
	"boards-backend/pkg/notifytypes"
	"boards-backend/pkg/service/snotification"
	"boards-backend/pkg/testutil"
)

func TestNotificationLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	ns := snotification.New(base.Queries)

	recipient := testutil.SeedUser(t, ctx, base, "recipient@example.com")

	n := mnotification.Notification{
		ID:          idwrap.NewNow(),
		RecipientID: recipient.ID,
		ActorID:     base.Owner.ID,
		Label:       notifytypes.CardCommentCreated,
		Description: "commented",
	}
	require.NoError(t, ns.Create(ctx, &n))
	assert.False(t, n.Created.IsZero())

	got, err := ns.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, got.Read)
	assert.Equal(t, notifytypes.CardCommentCreated, got.Label)

	require.NoError(t, ns.MarkRead(ctx, n.ID))
	got, err = ns.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	byRecipient, err := ns.GetByRecipientID(ctx, recipient.ID)
	require.NoError(t, err)
	assert.Len(t, byRecipient, 1)

	require.NoError(t, ns.Delete(ctx, n.ID))
	_, err = ns.Get(ctx, n.ID)
	require.ErrorIs(t, err, snotification.ErrNoNotificationFound)
}
