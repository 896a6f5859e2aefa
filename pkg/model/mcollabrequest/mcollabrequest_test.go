package mcollabrequest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mcollabrequest"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	req := mcollabrequest.BoardCollaboratorRequest{
		ID:      idwrap.NewNow(),
		BoardID: idwrap.NewNow(),
	}
	require.ErrorIs(t, req.Validate(), mcollabrequest.ErrNoUserOrEmail)

	req.Email = "someone@example.com"
	require.NoError(t, req.Validate())

	userID := idwrap.NewNow()
	req.Email = ""
	req.UserID = &userID
	require.NoError(t, req.Validate())
}
