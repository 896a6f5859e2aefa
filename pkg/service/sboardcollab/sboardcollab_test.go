package sboardcollab_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mboardcollab"
	"boards-backend/pkg/service/sboardcollab"
	"boards-backend/pkg/testutil"
)

func TestCreateValidates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Inbox")
	bcs := sboardcollab.New(base.Queries)

	bc := mboardcollab.BoardCollaborator{
		ID:         idwrap.NewNow(),
		BoardID:    board.ID,
		Permission: mboardcollab.PermissionRead,
	}
	require.ErrorIs(t, bcs.Create(ctx, &bc), mboardcollab.ErrNoUserOrInvitedUser)
}

func TestDuplicateUserRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Inbox")
	bcs := sboardcollab.New(base.Queries)

	user := testutil.SeedUser(t, ctx, base, "collab@example.com")
	userID := user.ID
	require.NoError(t, bcs.Create(ctx, &mboardcollab.BoardCollaborator{
		ID:         idwrap.NewNow(),
		BoardID:    board.ID,
		UserID:     &userID,
		Permission: mboardcollab.PermissionRead,
	}))

	// one row per (board, user)
	err := bcs.Create(ctx, &mboardcollab.BoardCollaborator{
		ID:         idwrap.NewNow(),
		BoardID:    board.ID,
		UserID:     &userID,
		Permission: mboardcollab.PermissionWrite,
	})
	require.Error(t, err)
}

func TestGetByUserID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	first := testutil.SeedBoard(t, ctx, base, "First")
	second := testutil.SeedBoard(t, ctx, base, "Second")
	bcs := sboardcollab.New(base.Queries)

	collaborations, err := bcs.GetByUserID(ctx, base.Owner.ID)
	require.NoError(t, err)
	require.Len(t, collaborations, 2)

	boardIDs := []idwrap.IDWrap{collaborations[0].BoardID, collaborations[1].BoardID}
	assert.Contains(t, boardIDs, first.ID)
	assert.Contains(t, boardIDs, second.ID)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Inbox")
	bcs := sboardcollab.New(base.Queries)

	collaborators, err := bcs.GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, collaborators, 1)

	require.NoError(t, bcs.Delete(ctx, collaborators[0].ID))
	collaborators, err = bcs.GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, collaborators)
}
