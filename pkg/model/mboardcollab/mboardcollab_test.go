package mboardcollab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mboardcollab"
)

func TestValidateExactlyOneParticipant(t *testing.T) {
	t.Parallel()

	userID := idwrap.NewNow()
	invitedUserID := idwrap.NewNow()

	bc := mboardcollab.BoardCollaborator{
		ID:         idwrap.NewNow(),
		BoardID:    idwrap.NewNow(),
		UserID:     &userID,
		Permission: mboardcollab.PermissionRead,
	}
	require.NoError(t, bc.Validate())

	bc.UserID = nil
	bc.InvitedUserID = &invitedUserID
	require.NoError(t, bc.Validate())

	bc.UserID = &userID
	require.ErrorIs(t, bc.Validate(), mboardcollab.ErrBothUserAndInvitedUser)

	bc.UserID = nil
	bc.InvitedUserID = nil
	require.ErrorIs(t, bc.Validate(), mboardcollab.ErrNoUserOrInvitedUser)
}
