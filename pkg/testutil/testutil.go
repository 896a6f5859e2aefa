package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"boards-backend/pkg/dbtest"
	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/maccount"
	"boards-backend/pkg/model/mboard"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/service/saccount"
	"boards-backend/pkg/service/sboard"
	"boards-backend/pkg/service/suser"
	"boards-backend/pkg/sqlc/gen"
)

// BaseTestData seeds the fixtures almost every service test needs: an
// owner user and their account.
type BaseTestData struct {
	DB      *sql.DB
	Queries *gen.Queries
	Owner   muser.User
	Account maccount.Account
}

func SeedAccount(t *testing.T, ctx context.Context) BaseTestData {
	t.Helper()

	db, err := dbtest.GetTestDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	queries := gen.New(db)

	owner := muser.User{
		ID:        idwrap.NewNow(),
		Email:     "owner@example.com",
		FirstName: "Olive",
		LastName:  "Owner",
	}
	require.NoError(t, suser.New(queries).CreateUser(ctx, &owner))

	account := maccount.Account{
		ID:      idwrap.NewNow(),
		Name:    "Acme",
		OwnerID: owner.ID,
	}
	require.NoError(t, saccount.New(queries).Create(ctx, &account))

	return BaseTestData{
		DB:      db,
		Queries: queries,
		Owner:   owner,
		Account: account,
	}
}

// SeedBoard creates a board on the base account through the board
// service, so the owner collaborator bootstrap runs too.
func SeedBoard(t *testing.T, ctx context.Context, base BaseTestData, name string) mboard.Board {
	t.Helper()

	board := mboard.Board{
		ID:        idwrap.NewNow(),
		Name:      name,
		AccountID: base.Account.ID,
		CreatedBy: base.Owner.ID,
	}
	require.NoError(t, sboard.New(base.DB).Create(ctx, &board))
	return board
}

// SeedUser inserts an extra user with the given email.
func SeedUser(t *testing.T, ctx context.Context, base BaseTestData, email string) muser.User {
	t.Helper()

	user := muser.User{
		ID:        idwrap.NewNow(),
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, suser.New(base.Queries).CreateUser(ctx, &user))
	return user
}
