package sboardcollab

import (
	"context"
	"database/sql"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mboardcollab"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoCollaboratorFound = sql.ErrNoRows

type BoardCollaboratorService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) BoardCollaboratorService {
	return BoardCollaboratorService{queries: queries}
}

func (bcs BoardCollaboratorService) TX(tx *sql.Tx) BoardCollaboratorService {
	return BoardCollaboratorService{queries: bcs.queries.WithTx(tx)}
}

func ConvertToModelBoardCollaborator(bc gen.BoardCollaborator) *mboardcollab.BoardCollaborator {
	converted := &mboardcollab.BoardCollaborator{
		ID:         bc.ID,
		BoardID:    bc.BoardID,
		Permission: mboardcollab.Permission(bc.Permission),
	}
	if bc.UserID != nil {
		userID := idwrap.NewFromBytesMust(bc.UserID)
		converted.UserID = &userID
	}
	if bc.InvitedUserID != nil {
		invitedUserID := idwrap.NewFromBytesMust(bc.InvitedUserID)
		converted.InvitedUserID = &invitedUserID
	}
	return converted
}

// Create validates the collaborator before the write; an invalid row
// never reaches the store.
func (bcs BoardCollaboratorService) Create(ctx context.Context, bc *mboardcollab.BoardCollaborator) error {
	if err := bc.Validate(); err != nil {
		return err
	}
	var userID, invitedUserID []byte
	if bc.UserID != nil {
		userID = bc.UserID.Bytes()
	}
	if bc.InvitedUserID != nil {
		invitedUserID = bc.InvitedUserID.Bytes()
	}
	return bcs.queries.CreateBoardCollaborator(ctx, gen.CreateBoardCollaboratorParams{
		ID:            bc.ID,
		BoardID:       bc.BoardID,
		UserID:        userID,
		InvitedUserID: invitedUserID,
		Permission:    string(bc.Permission),
	})
}

func (bcs BoardCollaboratorService) Get(ctx context.Context, id idwrap.IDWrap) (*mboardcollab.BoardCollaborator, error) {
	bc, err := bcs.queries.GetBoardCollaborator(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoCollaboratorFound
		}
		return nil, err
	}
	return ConvertToModelBoardCollaborator(bc), nil
}

func (bcs BoardCollaboratorService) GetByBoardID(ctx context.Context, boardID idwrap.IDWrap) ([]mboardcollab.BoardCollaborator, error) {
	rows, err := bcs.queries.GetBoardCollaboratorsByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	collaborators := make([]mboardcollab.BoardCollaborator, len(rows))
	for i, row := range rows {
		collaborators[i] = *ConvertToModelBoardCollaborator(row)
	}
	return collaborators, nil
}

func (bcs BoardCollaboratorService) GetByUserID(ctx context.Context, userID idwrap.IDWrap) ([]mboardcollab.BoardCollaborator, error) {
	rows, err := bcs.queries.GetBoardCollaboratorsByUserID(ctx, userID.Bytes())
	if err != nil {
		return nil, err
	}
	collaborators := make([]mboardcollab.BoardCollaborator, len(rows))
	for i, row := range rows {
		collaborators[i] = *ConvertToModelBoardCollaborator(row)
	}
	return collaborators, nil
}

func (bcs BoardCollaboratorService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return bcs.queries.DeleteBoardCollaborator(ctx, id)
}
