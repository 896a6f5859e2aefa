package sinviteduser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/emailclient/mockemail"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/logger/mocklogger"
	"boards-backend/pkg/model/minviteduser"
	"boards-backend/pkg/notify"
	"boards-backend/pkg/service/sinviteduser"
	"boards-backend/pkg/service/snotification"
	"boards-backend/pkg/testutil"
)

func newService(t *testing.T, base testutil.BaseTestData) (sinviteduser.InvitedUserService, *mockemail.MockEmailClient) {
	t.Helper()
	email := mockemail.NewMockEmailClient()
	dispatcher := notify.NewDispatcher(email, snotification.New(base.Queries), mocklogger.NewMockLogger())
	return sinviteduser.New(base.Queries, dispatcher), email
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	is, _ := newService(t, base)

	iu := minviteduser.InvitedUser{
		ID:        idwrap.NewNow(),
		FirstName: "Ivy",
		LastName:  "Invitee",
		Email:     "ivy@example.com",
		AccountID: base.Account.ID,
		CreatedBy: base.Owner.ID,
	}
	require.NoError(t, is.Create(ctx, &iu))

	got, err := is.Get(ctx, iu.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivy@example.com", got.Email)
	assert.Nil(t, got.UserID)

	byAccount, err := is.GetByAccountID(ctx, base.Account.ID)
	require.NoError(t, err)
	assert.Len(t, byAccount, 1)
}

func TestCreateKeepsBoundUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	is, _ := newService(t, base)

	bound := testutil.SeedUser(t, ctx, base, "bound@example.com")
	boundID := bound.ID

	iu := minviteduser.InvitedUser{
		ID:        idwrap.NewNow(),
		Email:     bound.Email,
		UserID:    &boundID,
		AccountID: base.Account.ID,
		CreatedBy: base.Owner.ID,
	}
	require.NoError(t, is.Create(ctx, &iu))

	got, err := is.Get(ctx, iu.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, 0, got.UserID.Compare(bound.ID))
}

func TestSendInvite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	is, email := newService(t, base)

	iu := minviteduser.InvitedUser{
		ID:        idwrap.NewNow(),
		FirstName: "Ivy",
		LastName:  "Invitee",
		Email:     "ivy@example.com",
		AccountID: base.Account.ID,
		CreatedBy: base.Owner.ID,
	}
	require.NoError(t, is.Create(ctx, &iu))
	require.NoError(t, is.SendInvite(ctx, &iu, base.Owner))

	require.Len(t, email.Sent, 1)
	assert.Equal(t, []string{"ivy@example.com"}, email.Sent[0].Recipients)
	assert.Contains(t, email.Sent[0].Body, base.Owner.FullName())
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	is, _ := newService(t, base)

	_, err := is.Get(ctx, idwrap.NewNow())
	require.ErrorIs(t, err, sinviteduser.ErrNoInvitedUserFound)
}
