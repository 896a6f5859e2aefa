package suser_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/service/suser"
	"boards-backend/pkg/sqlc/gen"
)

func newMockService(t *testing.T) (suser.UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return suser.New(gen.New(db)), mock
}

func TestCreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	us, mock := newMockService(t)
	user := muser.User{
		ID:        idwrap.NewNow(),
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	mock.ExpectExec("-- name: CreateUser :exec\nINSERT INTO users (id, email, first_name, last_name)\nVALUES (?, ?, ?, ?)\n").
		WithArgs(user.ID, user.Email, user.FirstName, user.LastName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, us.CreateUser(ctx, &user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	us, mock := newMockService(t)
	id := idwrap.NewNow()

	rows := sqlmock.NewRows([]string{"id", "email", "first_name", "last_name"}).
		AddRow(id.Bytes(), "ada@example.com", "Ada", "Lovelace")
	mock.ExpectQuery("-- name: GetUserByEmail :one\nSELECT id, email, first_name, last_name\nFROM users\nWHERE email = ?\n").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := us.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, user.ID.Compare(id))
	assert.Equal(t, "Ada Lovelace", user.FullName())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	us, mock := newMockService(t)

	mock.ExpectQuery("-- name: GetUserByEmail :one\nSELECT id, email, first_name, last_name\nFROM users\nWHERE email = ?\n").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := us.GetUserByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, suser.ErrNoUserFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
