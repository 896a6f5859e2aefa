package saccount

import (
	"context"
	"database/sql"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/maccount"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/service/suser"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoAccountFound = sql.ErrNoRows

type AccountService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) AccountService {
	return AccountService{queries: queries}
}

func (as AccountService) TX(tx *sql.Tx) AccountService {
	return AccountService{queries: as.queries.WithTx(tx)}
}

func ConvertToModelAccount(account gen.Account) *maccount.Account {
	return &maccount.Account{
		ID:      account.ID,
		Name:    account.Name,
		OwnerID: account.OwnerID,
	}
}

func (as AccountService) Create(ctx context.Context, account *maccount.Account) error {
	return as.queries.CreateAccount(ctx, gen.CreateAccountParams{
		ID:      account.ID,
		Name:    account.Name,
		OwnerID: account.OwnerID,
	})
}

func (as AccountService) Get(ctx context.Context, id idwrap.IDWrap) (*maccount.Account, error) {
	account, err := as.queries.GetAccount(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoAccountFound
		}
		return nil, err
	}
	return ConvertToModelAccount(account), nil
}

// GetOwner resolves the account's owning user.
func (as AccountService) GetOwner(ctx context.Context, id idwrap.IDWrap) (*muser.User, error) {
	owner, err := as.queries.GetAccountOwner(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoAccountFound
		}
		return nil, err
	}
	return suser.ConvertToModelUser(owner), nil
}

func (as AccountService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	return as.queries.DeleteAccount(ctx, id)
}
