package notifytypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/notifytypes"
)

func TestCatalogLabelsResolve(t *testing.T) {
	t.Parallel()

	labels := []string{
		notifytypes.CardCommentCreated,
		notifytypes.SignupRequestCreated,
		notifytypes.UserInvited,
		notifytypes.BoardCollaboratorRequest,
		notifytypes.PasswordResetRequested,
		notifytypes.CardCreated,
		notifytypes.CardFeatured,
		notifytypes.CardStackCreated,
		notifytypes.BoardCollaboratorCreated,
	}
	for _, label := range labels {
		nt, ok := notifytypes.Get(label)
		require.True(t, ok, label)
		assert.Equal(t, label, nt.Label)
		assert.True(t, nt.Email || nt.InApp, label)
	}
	assert.Len(t, notifytypes.All(), len(labels))
}

func TestChannelFlags(t *testing.T) {
	t.Parallel()

	comment, ok := notifytypes.Get(notifytypes.CardCommentCreated)
	require.True(t, ok)
	assert.True(t, comment.Email)
	assert.True(t, comment.InApp)

	invited, ok := notifytypes.Get(notifytypes.UserInvited)
	require.True(t, ok)
	assert.True(t, invited.Email)
	assert.False(t, invited.InApp)

	created, ok := notifytypes.Get(notifytypes.CardCreated)
	require.True(t, ok)
	assert.False(t, created.Email)
	assert.True(t, created.InApp)
}

func TestGetUnknownLabel(t *testing.T) {
	t.Parallel()

	_, ok := notifytypes.Get("board_deleted")
	assert.False(t, ok)
}
