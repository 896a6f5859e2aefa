package scollabrequest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/emailclient/mockemail"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/logger/mocklogger"
	"boards-backend/pkg/model/mboardcollab"
	"boards-backend/pkg/model/mcollabrequest"
	"boards-backend/pkg/notify"
	"boards-backend/pkg/service/sboardcollab"
	"boards-backend/pkg/service/scollabrequest"
	"boards-backend/pkg/service/sinviteduser"
	"boards-backend/pkg/service/snotification"
	"boards-backend/pkg/testutil"
)

func newService(t *testing.T, base testutil.BaseTestData) (scollabrequest.CollaboratorRequestService, *mockemail.MockEmailClient) {
	t.Helper()
	email := mockemail.NewMockEmailClient()
	dispatcher := notify.NewDispatcher(email, snotification.New(base.Queries), mocklogger.NewMockLogger())
	return scollabrequest.New(base.DB, dispatcher), email
}

func TestCreateBindsExistingUserByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, _ := newService(t, base)

	existing := testutil.SeedUser(t, ctx, base, "member@example.com")

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:        idwrap.NewNow(),
		FirstName: "Typed",
		LastName:  "Name",
		Email:     "member@example.com",
		BoardID:   board.ID,
		Message:   "let me in",
	}
	require.NoError(t, cs.Create(ctx, &req))

	require.NotNil(t, req.UserID)
	assert.Equal(t, 0, req.UserID.Compare(existing.ID))
	// the bound profile wins over what the requester typed
	assert.Equal(t, existing.FirstName, req.FirstName)
	assert.Equal(t, existing.LastName, req.LastName)

	stored, err := cs.Get(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, 0, stored.UserID.Compare(existing.ID))
}

func TestCreateUnknownEmailStaysUnbound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, _ := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "outsider@example.com",
		BoardID: board.ID,
	}
	require.NoError(t, cs.Create(ctx, &req))
	assert.Nil(t, req.UserID)
}

func TestCreateRequiresUserOrEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, _ := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		BoardID: board.ID,
	}
	require.ErrorIs(t, cs.Create(ctx, &req), mcollabrequest.ErrNoUserOrEmail)
}

func TestDuplicateRequestRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, _ := newService(t, base)

	first := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "outsider@example.com",
		BoardID: board.ID,
	}
	require.NoError(t, cs.Create(ctx, &first))

	second := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "outsider@example.com",
		BoardID: board.ID,
	}
	require.Error(t, cs.Create(ctx, &second))
}

func TestAccept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, email := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:        idwrap.NewNow(),
		FirstName: "Rex",
		LastName:  "Requester",
		Email:     "rex@example.com",
		BoardID:   board.ID,
	}
	require.NoError(t, cs.Create(ctx, &req))
	require.NoError(t, cs.Accept(ctx, &req))

	// the request is consumed
	_, err := cs.Get(ctx, req.ID)
	require.ErrorIs(t, err, scollabrequest.ErrNoRequestFound)

	// an invited user exists on the board's account
	invitedService := sinviteduser.New(base.Queries, notify.Dispatcher{})
	invited, err := invitedService.GetByAccountID(ctx, base.Account.ID)
	require.NoError(t, err)
	require.Len(t, invited, 1)
	assert.Equal(t, "rex@example.com", invited[0].Email)
	assert.Equal(t, 0, invited[0].CreatedBy.Compare(base.Owner.ID))

	// the board gained a read collaborator bound to the invited user
	collaborators, err := sboardcollab.New(base.Queries).GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, collaborators, 2)
	var found *mboardcollab.BoardCollaborator
	for i := range collaborators {
		if collaborators[i].InvitedUserID != nil {
			found = &collaborators[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 0, found.InvitedUserID.Compare(invited[0].ID))
	assert.Equal(t, mboardcollab.PermissionRead, found.Permission)

	memberIDs, err := invitedService.GetCollaboratorIDs(ctx, invited[0].ID)
	require.NoError(t, err)
	require.Len(t, memberIDs, 1)
	assert.Equal(t, 0, memberIDs[0].Compare(found.ID))

	// the invite went out
	require.Len(t, email.Sent, 1)
	assert.Equal(t, []string{"rex@example.com"}, email.Sent[0].Recipients)
}

func TestAcceptRollsBackWhenInviteFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, email := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "rex@example.com",
		BoardID: board.ID,
	}
	require.NoError(t, cs.Create(ctx, &req))

	email.FailWith = mockemail.ErrForcedFailure
	require.ErrorIs(t, cs.Accept(ctx, &req), mockemail.ErrForcedFailure)

	// nothing was committed
	stored, err := cs.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "rex@example.com", stored.Email)

	invited, err := sinviteduser.New(base.Queries, notify.Dispatcher{}).GetByAccountID(ctx, base.Account.ID)
	require.NoError(t, err)
	assert.Empty(t, invited)

	collaborators, err := sboardcollab.New(base.Queries).GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, collaborators, 1)
}

func TestReject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, email := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "rex@example.com",
		BoardID: board.ID,
	}
	require.NoError(t, cs.Create(ctx, &req))
	require.NoError(t, cs.Reject(ctx, &req))

	_, err := cs.Get(ctx, req.ID)
	require.ErrorIs(t, err, scollabrequest.ErrNoRequestFound)

	collaborators, err := sboardcollab.New(base.Queries).GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, collaborators, 1)
	assert.Empty(t, email.Sent)
}

func TestNotifyAccountOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, email := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "rex@example.com",
		BoardID: board.ID,
	}
	require.NoError(t, cs.Create(ctx, &req))
	require.NoError(t, cs.NotifyAccountOwner(ctx, &req))

	require.Len(t, email.Sent, 1)
	assert.Equal(t, []string{base.Owner.Email}, email.Sent[0].Recipients)
	assert.Contains(t, email.Sent[0].Body, "rex@example.com wants to join your board")
}

func TestNotifyAccountOwnerDeliveryFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Public Board")
	cs, email := newService(t, base)

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		Email:   "rex@example.com",
		BoardID: board.ID,
	}
	require.NoError(t, cs.Create(ctx, &req))

	email.FailWith = mockemail.ErrForcedFailure
	require.ErrorIs(t, cs.NotifyAccountOwner(ctx, &req), mockemail.ErrForcedFailure)
}
