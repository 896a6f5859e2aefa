package scomment

import (
	"context"
	"database/sql"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mcomment"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/notify"
	"boards-backend/pkg/notifytypes"
	"boards-backend/pkg/service/suser"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoCommentFound = sql.ErrNoRows

type CommentService struct {
	queries    *gen.Queries
	users      suser.UserService
	dispatcher notify.Dispatcher
}

func New(queries *gen.Queries, dispatcher notify.Dispatcher) CommentService {
	return CommentService{
		queries:    queries,
		users:      suser.New(queries),
		dispatcher: dispatcher,
	}
}

func ConvertToModelComment(comment gen.Comment) *mcomment.Comment {
	return &mcomment.Comment{
		ID:        comment.ID,
		CardID:    comment.CardID,
		CreatedBy: comment.CreatedBy,
		Content:   comment.Content,
	}
}

func (cs CommentService) Create(ctx context.Context, comment *mcomment.Comment) error {
	return cs.queries.CreateComment(ctx, gen.CreateCommentParams{
		ID:        comment.ID,
		CardID:    comment.CardID,
		CreatedBy: comment.CreatedBy,
		Content:   comment.Content,
	})
}

func (cs CommentService) Get(ctx context.Context, id idwrap.IDWrap) (*mcomment.Comment, error) {
	comment, err := cs.queries.GetComment(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoCommentFound
		}
		return nil, err
	}
	return ConvertToModelComment(comment), nil
}

func (cs CommentService) GetByCardID(ctx context.Context, cardID idwrap.IDWrap) ([]mcomment.Comment, error) {
	rows, err := cs.queries.GetCommentsByCardID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	comments := make([]mcomment.Comment, len(rows))
	for i, row := range rows {
		comments[i] = *ConvertToModelComment(row)
	}
	return comments, nil
}

func (cs CommentService) Update(ctx context.Context, comment *mcomment.Comment) error {
	return cs.queries.UpdateComment(ctx, gen.UpdateCommentParams{
		Content: comment.Content,
		ID:      comment.ID,
	})
}

func (cs CommentService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return cs.queries.DeleteComment(ctx, id)
}

// NotifyCommentCreated tells everyone on the comment's board about the
// new comment, except the author. The recipient set is resolved at send
// time so collaborators added after the comment was written still hear
// about later ones.
func (cs CommentService) NotifyCommentCreated(ctx context.Context, comment *mcomment.Comment) error {
	card, err := cs.queries.GetCard(ctx, comment.CardID)
	if err != nil {
		return err
	}
	users, err := cs.users.GetUsersByBoardID(ctx, card.BoardID)
	if err != nil {
		return err
	}

	var actor *muser.User
	recipients := make([]muser.User, 0, len(users))
	for i, user := range users {
		if user.ID.Compare(comment.CreatedBy) == 0 {
			actor = &users[i]
			continue
		}
		recipients = append(recipients, user)
	}
	if actor == nil {
		actor, err = cs.users.GetUser(ctx, comment.CreatedBy)
		if err != nil {
			return err
		}
	}

	extra := notify.Extra{Description: comment.Content}
	return cs.dispatcher.Send(ctx, *actor, recipients, notifytypes.CardCommentCreated, extra)
}
