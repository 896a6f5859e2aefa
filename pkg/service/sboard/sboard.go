package sboard

import (
	"context"
	"database/sql"
	"time"

	"boards-backend/pkg/dbtime"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mboard"
	"boards-backend/pkg/model/mboardcollab"
	"boards-backend/pkg/slugify"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoBoardFound = sql.ErrNoRows

type BoardService struct {
	db      *sql.DB
	queries *gen.Queries
}

func New(db *sql.DB) BoardService {
	return BoardService{db: db, queries: gen.New(db)}
}

func ConvertToDBBoard(board mboard.Board) gen.Board {
	return gen.Board{
		ID:              board.ID,
		Name:            board.Name,
		Slug:            board.Slug,
		AccountID:       board.AccountID,
		CreatedBy:       board.CreatedBy,
		IsShared:        board.IsShared,
		ThumbnailSmPath: board.ThumbnailSmPath,
		ThumbnailMdPath: board.ThumbnailMdPath,
		ThumbnailLgPath: board.ThumbnailLgPath,
		Updated:         board.Updated.Unix(),
	}
}

func ConvertToModelBoard(board gen.Board) *mboard.Board {
	return &mboard.Board{
		ID:              board.ID,
		Name:            board.Name,
		Slug:            board.Slug,
		AccountID:       board.AccountID,
		CreatedBy:       board.CreatedBy,
		IsShared:        board.IsShared,
		ThumbnailSmPath: board.ThumbnailSmPath,
		ThumbnailMdPath: board.ThumbnailMdPath,
		ThumbnailLgPath: board.ThumbnailLgPath,
		Updated:         dbtime.DBTime(time.Unix(board.Updated, 0)),
	}
}

// Create slugs the board name uniquely within its account and, in the
// same transaction, grants the account owner a write collaborator row.
// The bootstrap fires on creation only; updates never add collaborators.
func (bs BoardService) Create(ctx context.Context, board *mboard.Board) error {
	taken, err := bs.queries.GetBoardSlugsByAccountID(ctx, board.AccountID)
	if err != nil {
		return err
	}
	slug, err := slugify.Generate(board.Name, mboard.ReservedKeywords, taken)
	if err != nil {
		return err
	}
	board.Slug = slug

	owner, err := bs.queries.GetAccountOwner(ctx, board.AccountID)
	if err != nil {
		return err
	}

	if board.Updated.IsZero() {
		board.Updated = dbtime.DBNow()
	}

	tx, err := bs.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := bs.queries.WithTx(tx)
	dbBoard := ConvertToDBBoard(*board)
	err = qtx.CreateBoard(ctx, gen.CreateBoardParams{
		ID:              dbBoard.ID,
		Name:            dbBoard.Name,
		Slug:            dbBoard.Slug,
		AccountID:       dbBoard.AccountID,
		CreatedBy:       dbBoard.CreatedBy,
		IsShared:        dbBoard.IsShared,
		ThumbnailSmPath: dbBoard.ThumbnailSmPath,
		ThumbnailMdPath: dbBoard.ThumbnailMdPath,
		ThumbnailLgPath: dbBoard.ThumbnailLgPath,
		Updated:         dbBoard.Updated,
	})
	if err != nil {
		return err
	}

	err = qtx.CreateBoardCollaborator(ctx, gen.CreateBoardCollaboratorParams{
		ID:         idwrap.NewNow(),
		BoardID:    board.ID,
		UserID:     owner.ID.Bytes(),
		Permission: string(mboardcollab.PermissionWrite),
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (bs BoardService) Get(ctx context.Context, id idwrap.IDWrap) (*mboard.Board, error) {
	board, err := bs.queries.GetBoard(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoBoardFound
		}
		return nil, err
	}
	return ConvertToModelBoard(board), nil
}

func (bs BoardService) GetByAccountID(ctx context.Context, accountID idwrap.IDWrap) ([]mboard.Board, error) {
	rows, err := bs.queries.GetBoardsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	boards := make([]mboard.Board, len(rows))
	for i, row := range rows {
		boards[i] = *ConvertToModelBoard(row)
	}
	return boards, nil
}

func (bs BoardService) Update(ctx context.Context, board *mboard.Board) error {
	if mboard.IsReservedKeyword(board.Slug) {
		return mboard.ErrReservedSlug
	}
	board.Updated = dbtime.DBNow()
	err := bs.queries.UpdateBoard(ctx, gen.UpdateBoardParams{
		Name:            board.Name,
		Slug:            board.Slug,
		IsShared:        board.IsShared,
		ThumbnailSmPath: board.ThumbnailSmPath,
		ThumbnailMdPath: board.ThumbnailMdPath,
		ThumbnailLgPath: board.ThumbnailLgPath,
		Updated:         board.Updated.Unix(),
		ID:              board.ID,
	})
	if err == sql.ErrNoRows {
		return ErrNoBoardFound
	}
	return err
}

func (bs BoardService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return bs.queries.DeleteBoard(ctx, id)
}

// IsUserCollaborator reports whether the user collaborates on the
// board. With PermissionRead it also accepts write rows, write implies
// read; with PermissionWrite only write rows count. The zero Permission
// matches any row.
func (bs BoardService) IsUserCollaborator(ctx context.Context, boardID, userID idwrap.IDWrap, permission mboardcollab.Permission) (bool, error) {
	rows, err := bs.queries.GetBoardCollaboratorsByBoardIDAndUserID(ctx, gen.GetBoardCollaboratorsByBoardIDAndUserIDParams{
		BoardID: boardID,
		UserID:  userID.Bytes(),
	})
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		switch permission {
		case mboardcollab.PermissionWrite:
			if row.Permission == string(mboardcollab.PermissionWrite) {
				return true, nil
			}
		case mboardcollab.PermissionRead:
			if row.Permission == string(mboardcollab.PermissionRead) ||
				row.Permission == string(mboardcollab.PermissionWrite) {
				return true, nil
			}
		default:
			return true, nil
		}
	}
	return false, nil
}
