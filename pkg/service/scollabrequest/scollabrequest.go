package scollabrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mboardcollab"
	"boards-backend/pkg/model/mcollabrequest"
	"boards-backend/pkg/model/minviteduser"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/notify"
	"boards-backend/pkg/notifytypes"
	"boards-backend/pkg/service/sboardcollab"
	"boards-backend/pkg/service/sinviteduser"
	"boards-backend/pkg/service/suser"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoRequestFound = sql.ErrNoRows

type CollaboratorRequestService struct {
	db         *sql.DB
	queries    *gen.Queries
	users      suser.UserService
	invited    sinviteduser.InvitedUserService
	collabs    sboardcollab.BoardCollaboratorService
	dispatcher notify.Dispatcher
}

func New(db *sql.DB, dispatcher notify.Dispatcher) CollaboratorRequestService {
	queries := gen.New(db)
	return CollaboratorRequestService{
		db:         db,
		queries:    queries,
		users:      suser.New(queries),
		invited:    sinviteduser.New(queries, dispatcher),
		collabs:    sboardcollab.New(queries),
		dispatcher: dispatcher,
	}
}

func ConvertToModelRequest(req gen.BoardCollaboratorRequest) *mcollabrequest.BoardCollaboratorRequest {
	converted := &mcollabrequest.BoardCollaboratorRequest{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BoardID:   req.BoardID,
		Message:   req.Message,
	}
	if req.UserID != nil {
		userID := idwrap.NewFromBytesMust(req.UserID)
		converted.UserID = &userID
	}
	return converted
}

// Create stores a pending request. When no user is bound yet the email
// is matched against existing users; when a user is bound, the bound
// profile's identity overwrites whatever the requester typed in.
func (cs CollaboratorRequestService) Create(ctx context.Context, req *mcollabrequest.BoardCollaboratorRequest) error {
	if req.UserID == nil && req.Email != "" {
		user, err := cs.users.GetUserByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, suser.ErrNoUserFound) {
			return err
		}
		if err == nil {
			req.UserID = &user.ID
		}
	}
	if req.UserID != nil {
		user, err := cs.users.GetUser(ctx, *req.UserID)
		if err != nil {
			return err
		}
		req.FirstName = user.FirstName
		req.LastName = user.LastName
		req.Email = user.Email
	}
	if err := req.Validate(); err != nil {
		return err
	}
	var userID []byte
	if req.UserID != nil {
		userID = req.UserID.Bytes()
	}
	return cs.queries.CreateBoardCollaboratorRequest(ctx, gen.CreateBoardCollaboratorRequestParams{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserID:    userID,
		BoardID:   req.BoardID,
		Message:   req.Message,
	})
}

func (cs CollaboratorRequestService) Get(ctx context.Context, id idwrap.IDWrap) (*mcollabrequest.BoardCollaboratorRequest, error) {
	req, err := cs.queries.GetBoardCollaboratorRequest(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoRequestFound
		}
		return nil, err
	}
	return ConvertToModelRequest(req), nil
}

func (cs CollaboratorRequestService) GetByBoardID(ctx context.Context, boardID idwrap.IDWrap) ([]mcollabrequest.BoardCollaboratorRequest, error) {
	rows, err := cs.queries.GetBoardCollaboratorRequestsByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	requests := make([]mcollabrequest.BoardCollaboratorRequest, len(rows))
	for i, row := range rows {
		requests[i] = *ConvertToModelRequest(row)
	}
	return requests, nil
}

// Accept turns the request into an invited user with a read
// collaborator row on the board, sends the invite and consumes the
// request. Everything, the invite send included, runs inside one
// transaction so a failed delivery leaves no partial state behind.
func (cs CollaboratorRequestService) Accept(ctx context.Context, req *mcollabrequest.BoardCollaboratorRequest) error {
	board, err := cs.queries.GetBoard(ctx, req.BoardID)
	if err != nil {
		return err
	}
	owner, err := cs.queries.GetAccountOwner(ctx, board.AccountID)
	if err != nil {
		return err
	}

	tx, err := cs.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	invitedTX := cs.invited.TX(tx)
	collabsTX := cs.collabs.TX(tx)

	invitedUser := &minviteduser.InvitedUser{
		ID:        idwrap.NewNow(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserID:    req.UserID,
		AccountID: board.AccountID,
		CreatedBy: owner.ID,
	}
	if err := invitedTX.Create(ctx, invitedUser); err != nil {
		return err
	}

	collaborator := &mboardcollab.BoardCollaborator{
		ID:            idwrap.NewNow(),
		BoardID:       req.BoardID,
		InvitedUserID: &invitedUser.ID,
		Permission:    mboardcollab.PermissionRead,
	}
	if err := collabsTX.Create(ctx, collaborator); err != nil {
		return err
	}

	if err := invitedTX.RegisterCollaborator(ctx, invitedUser.ID, collaborator.ID); err != nil {
		return err
	}

	if err := invitedTX.SendInvite(ctx, invitedUser, *suser.ConvertToModelUser(owner)); err != nil {
		return err
	}

	if err := cs.queries.WithTx(tx).DeleteBoardCollaboratorRequest(ctx, req.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// Reject drops the request without side effects.
func (cs CollaboratorRequestService) Reject(ctx context.Context, req *mcollabrequest.BoardCollaboratorRequest) error {
	return cs.queries.DeleteBoardCollaboratorRequest(ctx, req.ID)
}

// NotifyAccountOwner tells the board's account owner that someone asked
// to join.
func (cs CollaboratorRequestService) NotifyAccountOwner(ctx context.Context, req *mcollabrequest.BoardCollaboratorRequest) error {
	board, err := cs.queries.GetBoard(ctx, req.BoardID)
	if err != nil {
		return err
	}
	owner, err := cs.queries.GetAccountOwner(ctx, board.AccountID)
	if err != nil {
		return err
	}
	actor := muser.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.UserID != nil {
		actor.ID = *req.UserID
	}
	extra := notify.Extra{
		Description: fmt.Sprintf("%s wants to join your board", req.Email),
		Context: map[string]string{
			"board": board.Name,
		},
	}
	recipients := []muser.User{*suser.ConvertToModelUser(owner)}
	return cs.dispatcher.Send(ctx, actor, recipients, notifytypes.BoardCollaboratorRequest, extra)
}
