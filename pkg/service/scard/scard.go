package scard

import (
	"context"
	"database/sql"
	"time"

	"boards-backend/pkg/dbtime"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/mcard"
	"boards-backend/pkg/preview"
	"boards-backend/pkg/slugify"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoCardFound = sql.ErrNoRows

type CardService struct {
	db       *sql.DB
	queries  *gen.Queries
	previews preview.Queuer
}

func New(db *sql.DB, previews preview.Queuer) CardService {
	return CardService{db: db, queries: gen.New(db), previews: previews}
}

func ConvertToDBCard(card mcard.Card) gen.Card {
	dbCard := gen.Card{
		ID:              card.ID,
		Name:            card.Name,
		Type:            string(card.Type),
		Slug:            card.Slug,
		BoardID:         card.BoardID,
		CreatedBy:       card.CreatedBy,
		Position:        card.Position,
		Featured:        card.Featured,
		OriginUrl:       card.OriginUrl,
		Content:         card.Content,
		IsShared:        card.IsShared,
		ThumbnailSmPath: card.ThumbnailSmPath,
		ThumbnailMdPath: card.ThumbnailMdPath,
		ThumbnailLgPath: card.ThumbnailLgPath,
		Updated:         card.Updated.Unix(),
	}
	if card.StackID != nil {
		dbCard.StackID = card.StackID.Bytes()
	}
	if card.FileSize != nil {
		dbCard.FileSize = sql.NullInt64{Int64: *card.FileSize, Valid: true}
	}
	if card.MimeType != "" {
		dbCard.MimeType = sql.NullString{String: card.MimeType, Valid: true}
	}
	return dbCard
}

func ConvertToModelCard(card gen.Card) *mcard.Card {
	converted := &mcard.Card{
		ID:              card.ID,
		Name:            card.Name,
		Type:            mcard.CardType(card.Type),
		Slug:            card.Slug,
		BoardID:         card.BoardID,
		CreatedBy:       card.CreatedBy,
		Position:        card.Position,
		Featured:        card.Featured,
		OriginUrl:       card.OriginUrl,
		Content:         card.Content,
		IsShared:        card.IsShared,
		ThumbnailSmPath: card.ThumbnailSmPath,
		ThumbnailMdPath: card.ThumbnailMdPath,
		ThumbnailLgPath: card.ThumbnailLgPath,
		Updated:         dbtime.DBTime(time.Unix(card.Updated, 0)),
	}
	if card.StackID != nil {
		stackID := idwrap.NewFromBytesMust(card.StackID)
		converted.StackID = &stackID
	}
	if card.FileSize.Valid {
		fileSize := card.FileSize.Int64
		converted.FileSize = &fileSize
	}
	if card.MimeType.Valid {
		converted.MimeType = card.MimeType.String
	}
	return converted
}

// Create validates the card, slugs its name uniquely within the board
// and appends it after the board's last position. File cards queue a
// preview job for the fixed sizes; updates never requeue.
func (cs CardService) Create(ctx context.Context, card *mcard.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}

	taken, err := cs.queries.GetCardSlugsByBoardID(ctx, card.BoardID)
	if err != nil {
		return err
	}
	slug, err := slugify.Generate(card.Name, mcard.ReservedKeywords, taken)
	if err != nil {
		return err
	}
	card.Slug = slug

	maxPosition, err := cs.queries.GetMaxCardPosition(ctx, card.BoardID)
	if err != nil {
		return err
	}
	card.Position = maxPosition + 1

	if card.Updated.IsZero() {
		card.Updated = dbtime.DBNow()
	}

	dbCard := ConvertToDBCard(*card)
	err = cs.queries.CreateCard(ctx, gen.CreateCardParams{
		ID:              dbCard.ID,
		Name:            dbCard.Name,
		Type:            dbCard.Type,
		Slug:            dbCard.Slug,
		BoardID:         dbCard.BoardID,
		CreatedBy:       dbCard.CreatedBy,
		Position:        dbCard.Position,
		StackID:         dbCard.StackID,
		Featured:        dbCard.Featured,
		OriginUrl:       dbCard.OriginUrl,
		Content:         dbCard.Content,
		IsShared:        dbCard.IsShared,
		ThumbnailSmPath: dbCard.ThumbnailSmPath,
		ThumbnailMdPath: dbCard.ThumbnailMdPath,
		ThumbnailLgPath: dbCard.ThumbnailLgPath,
		FileSize:        dbCard.FileSize,
		MimeType:        dbCard.MimeType,
		Updated:         dbCard.Updated,
	})
	if err != nil {
		return err
	}

	if card.Type == mcard.TypeFile {
		req := preview.NewRequest(card.Content, mcard.PreviewSizes, map[string]string{
			"cardId": card.ID.String(),
		})
		return cs.previews.QueuePreviews(ctx, req)
	}
	return nil
}

func (cs CardService) Get(ctx context.Context, id idwrap.IDWrap) (*mcard.Card, error) {
	card, err := cs.queries.GetCard(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoCardFound
		}
		return nil, err
	}
	return ConvertToModelCard(card), nil
}

// GetByBoardID returns the board's cards ordered by position.
func (cs CardService) GetByBoardID(ctx context.Context, boardID idwrap.IDWrap) ([]mcard.Card, error) {
	rows, err := cs.queries.GetCardsByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	cards := make([]mcard.Card, len(rows))
	for i, row := range rows {
		cards[i] = *ConvertToModelCard(row)
	}
	return cards, nil
}

func (cs CardService) Update(ctx context.Context, card *mcard.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}
	if mcard.IsReservedKeyword(card.Slug) {
		return mcard.ErrReservedSlug
	}
	card.Updated = dbtime.DBNow()
	dbCard := ConvertToDBCard(*card)
	return cs.queries.UpdateCard(ctx, gen.UpdateCardParams{
		Name:            dbCard.Name,
		Slug:            dbCard.Slug,
		Featured:        dbCard.Featured,
		OriginUrl:       dbCard.OriginUrl,
		Content:         dbCard.Content,
		IsShared:        dbCard.IsShared,
		ThumbnailSmPath: dbCard.ThumbnailSmPath,
		ThumbnailMdPath: dbCard.ThumbnailMdPath,
		ThumbnailLgPath: dbCard.ThumbnailLgPath,
		FileSize:        dbCard.FileSize,
		MimeType:        dbCard.MimeType,
		Updated:         dbCard.Updated,
		ID:              dbCard.ID,
	})
}

func (cs CardService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return cs.queries.DeleteCard(ctx, id)
}

// Move places the card at the given position. Ordering is by position
// ascending; callers pick midpoints to insert between neighbours.
func (cs CardService) Move(ctx context.Context, id idwrap.IDWrap, position float64) error {
	return cs.queries.UpdateCardPosition(ctx, gen.UpdateCardPositionParams{
		Position: position,
		Updated:  dbtime.DBNow().Unix(),
		ID:       id,
	})
}

// AddToStack records the membership and mirrors it onto the card's
// stack_id inside one transaction so the two stay in sync.
func (cs CardService) AddToStack(ctx context.Context, stackID, cardID idwrap.IDWrap) error {
	tx, err := cs.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := cs.queries.WithTx(tx)
	err = qtx.CreateCardStackMember(ctx, gen.CreateCardStackMemberParams{
		StackID: stackID,
		CardID:  cardID,
	})
	if err != nil {
		return err
	}
	err = qtx.SetCardStack(ctx, gen.SetCardStackParams{
		StackID: stackID.Bytes(),
		ID:      cardID,
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (cs CardService) RemoveFromStack(ctx context.Context, stackID, cardID idwrap.IDWrap) error {
	tx, err := cs.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := cs.queries.WithTx(tx)
	err = qtx.DeleteCardStackMember(ctx, gen.DeleteCardStackMemberParams{
		StackID: stackID,
		CardID:  cardID,
	})
	if err != nil {
		return err
	}
	err = qtx.ClearCardStack(ctx, gen.ClearCardStackParams{
		ID:      cardID,
		StackID: stackID.Bytes(),
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}

// ClearStack empties the stack, dropping the memberships and the back
// references on the member cards.
func (cs CardService) ClearStack(ctx context.Context, stackID idwrap.IDWrap) error {
	tx, err := cs.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := cs.queries.WithTx(tx)
	if err := qtx.DeleteCardStackMembers(ctx, stackID); err != nil {
		return err
	}
	if err := qtx.ClearCardStackRefs(ctx, stackID.Bytes()); err != nil {
		return err
	}
	return tx.Commit()
}

func (cs CardService) GetStackMemberIDs(ctx context.Context, stackID idwrap.IDWrap) ([]idwrap.IDWrap, error) {
	return cs.queries.GetCardStackMemberIDs(ctx, stackID)
}
