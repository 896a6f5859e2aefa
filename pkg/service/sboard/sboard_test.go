package sboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mboard"
	"boards-backend/pkg/model/mboardcollab"
	"boards-backend/pkg/service/sboard"
	"boards-backend/pkg/service/sboardcollab"
	"boards-backend/pkg/testutil"
)

func TestCreateBootstrapsOwnerCollaborator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	bs := sboard.New(base.DB)

	board := mboard.Board{
		ID:        idwrap.NewNow(),
		Name:      "Launch Plan",
		AccountID: base.Account.ID,
		CreatedBy: base.Owner.ID,
	}
	require.NoError(t, bs.Create(ctx, &board))
	assert.Equal(t, "launch-plan", board.Slug)

	collaborators, err := sboardcollab.New(base.Queries).GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, collaborators, 1)
	require.NotNil(t, collaborators[0].UserID)
	assert.Equal(t, 0, collaborators[0].UserID.Compare(base.Owner.ID))
	assert.Equal(t, mboardcollab.PermissionWrite, collaborators[0].Permission)
}

func TestUpdateDoesNotAddCollaborators(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	bs := sboard.New(base.DB)
	board := testutil.SeedBoard(t, ctx, base, "Roadmap")

	board.Name = "Roadmap 2026"
	require.NoError(t, bs.Update(ctx, &board))

	collaborators, err := sboardcollab.New(base.Queries).GetByBoardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, collaborators, 1)
}

func TestUpdateRejectsReservedSlug(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	bs := sboard.New(base.DB)
	board := testutil.SeedBoard(t, ctx, base, "Roadmap")

	board.Slug = "admin"
	require.ErrorIs(t, bs.Update(ctx, &board), mboard.ErrReservedSlug)

	stored, err := bs.Get(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "roadmap", stored.Slug)
}

func TestCreateSlugUniqueWithinAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)

	first := testutil.SeedBoard(t, ctx, base, "Ideas")
	second := testutil.SeedBoard(t, ctx, base, "Ideas")
	third := testutil.SeedBoard(t, ctx, base, "Ideas")

	assert.Equal(t, "ideas", first.Slug)
	assert.Equal(t, "ideas-2", second.Slug)
	assert.Equal(t, "ideas-3", third.Slug)
}

func TestCreateSlugAvoidsReservedKeywords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	board := testutil.SeedBoard(t, ctx, base, "Settings")
	assert.Equal(t, "settings-2", board.Slug)
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	bs := sboard.New(base.DB)

	_, err := bs.Get(ctx, idwrap.NewNow())
	require.ErrorIs(t, err, sboard.ErrNoBoardFound)
}

func TestIsUserCollaborator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.SeedAccount(t, ctx)
	bs := sboard.New(base.DB)
	board := testutil.SeedBoard(t, ctx, base, "Shared Board")

	reader := testutil.SeedUser(t, ctx, base, "reader@example.com")
	readerID := reader.ID
	require.NoError(t, sboardcollab.New(base.Queries).Create(ctx, &mboardcollab.BoardCollaborator{
		ID:         idwrap.NewNow(),
		BoardID:    board.ID,
		UserID:     &readerID,
		Permission: mboardcollab.PermissionRead,
	}))

	// owner's bootstrap row carries write, which implies read
	ok, err := bs.IsUserCollaborator(ctx, board.ID, base.Owner.ID, mboardcollab.PermissionRead)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bs.IsUserCollaborator(ctx, board.ID, base.Owner.ID, mboardcollab.PermissionWrite)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bs.IsUserCollaborator(ctx, board.ID, reader.ID, mboardcollab.PermissionRead)
	require.NoError(t, err)
	assert.True(t, ok)

	// read never implies write
	ok, err = bs.IsUserCollaborator(ctx, board.ID, reader.ID, mboardcollab.PermissionWrite)
	require.NoError(t, err)
	assert.False(t, ok)

	stranger := testutil.SeedUser(t, ctx, base, "stranger@example.com")
	ok, err = bs.IsUserCollaborator(ctx, board.ID, stranger.ID, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
