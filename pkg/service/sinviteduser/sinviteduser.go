package sinviteduser

import (
	"context"
	"database/sql"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/minviteduser"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/notify"
	"boards-backend/pkg/notifytypes"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoInvitedUserFound = sql.ErrNoRows

type InvitedUserService struct {
	queries    *gen.Queries
	dispatcher notify.Dispatcher
}

func New(queries *gen.Queries, dispatcher notify.Dispatcher) InvitedUserService {
	return InvitedUserService{queries: queries, dispatcher: dispatcher}
}

func (is InvitedUserService) TX(tx *sql.Tx) InvitedUserService {
	return InvitedUserService{
		queries:    is.queries.WithTx(tx),
		dispatcher: is.dispatcher,
	}
}

func ConvertToModelInvitedUser(iu gen.InvitedUser) *minviteduser.InvitedUser {
	converted := &minviteduser.InvitedUser{
		ID:        iu.ID,
		FirstName: iu.FirstName,
		LastName:  iu.LastName,
		Email:     iu.Email,
		AccountID: iu.AccountID,
		CreatedBy: iu.CreatedBy,
	}
	if iu.UserID != nil {
		userID := idwrap.NewFromBytesMust(iu.UserID)
		converted.UserID = &userID
	}
	return converted
}

func (is InvitedUserService) Create(ctx context.Context, iu *minviteduser.InvitedUser) error {
	var userID []byte
	if iu.UserID != nil {
		userID = iu.UserID.Bytes()
	}
	return is.queries.CreateInvitedUser(ctx, gen.CreateInvitedUserParams{
		ID:        iu.ID,
		FirstName: iu.FirstName,
		LastName:  iu.LastName,
		Email:     iu.Email,
		UserID:    userID,
		AccountID: iu.AccountID,
		CreatedBy: iu.CreatedBy,
	})
}

func (is InvitedUserService) Get(ctx context.Context, id idwrap.IDWrap) (*minviteduser.InvitedUser, error) {
	iu, err := is.queries.GetInvitedUser(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoInvitedUserFound
		}
		return nil, err
	}
	return ConvertToModelInvitedUser(iu), nil
}

func (is InvitedUserService) GetByAccountID(ctx context.Context, accountID idwrap.IDWrap) ([]minviteduser.InvitedUser, error) {
	rows, err := is.queries.GetInvitedUsersByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	invited := make([]minviteduser.InvitedUser, len(rows))
	for i, row := range rows {
		invited[i] = *ConvertToModelInvitedUser(row)
	}
	return invited, nil
}

// RegisterCollaborator records a board collaborator under the invited
// user's collaborator set.
func (is InvitedUserService) RegisterCollaborator(ctx context.Context, invitedUserID, boardCollaboratorID idwrap.IDWrap) error {
	return is.queries.CreateInvitedUserCollaborator(ctx, gen.CreateInvitedUserCollaboratorParams{
		InvitedUserID:       invitedUserID,
		BoardCollaboratorID: boardCollaboratorID,
	})
}

func (is InvitedUserService) GetCollaboratorIDs(ctx context.Context, invitedUserID idwrap.IDWrap) ([]idwrap.IDWrap, error) {
	return is.queries.GetInvitedUserCollaboratorIDs(ctx, invitedUserID)
}

// SendInvite delivers the invitation to the invited address. The actor
// is the user who created the invite.
func (is InvitedUserService) SendInvite(ctx context.Context, iu *minviteduser.InvitedUser, actor muser.User) error {
	recipient := muser.User{
		Email:     iu.Email,
		FirstName: iu.FirstName,
		LastName:  iu.LastName,
	}
	if iu.UserID != nil {
		recipient.ID = *iu.UserID
	}
	return is.dispatcher.Send(ctx, actor, []muser.User{recipient}, notifytypes.UserInvited, notify.Extra{})
}

func (is InvitedUserService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return is.queries.DeleteInvitedUser(ctx, id)
}
