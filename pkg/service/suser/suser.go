package suser

import (
	"context"
	"database/sql"

	"boards-backend/pkg/idwrap"
	"boards-backend/pkg/model/muser"
	"boards-backend/pkg/sqlc/gen"
)

var ErrNoUserFound = sql.ErrNoRows

type UserService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) UserService {
	return UserService{queries: queries}
}

func (us UserService) TX(tx *sql.Tx) UserService {
	return UserService{queries: us.queries.WithTx(tx)}
}

func ConvertToModelUser(user gen.User) *muser.User {
	return &muser.User{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func (us UserService) CreateUser(ctx context.Context, user *muser.User) error {
	return us.queries.CreateUser(ctx, gen.CreateUserParams{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

func (us UserService) GetUser(ctx context.Context, id idwrap.IDWrap) (*muser.User, error) {
	user, err := us.queries.GetUser(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoUserFound
		}
		return nil, err
	}
	return ConvertToModelUser(user), nil
}

func (us UserService) GetUserByEmail(ctx context.Context, email string) (*muser.User, error) {
	user, err := us.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoUserFound
		}
		return nil, err
	}
	return ConvertToModelUser(user), nil
}

func (us UserService) GetUsersByBoardID(ctx context.Context, boardID idwrap.IDWrap) ([]muser.User, error) {
	rows, err := us.queries.GetUsersByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	users := make([]muser.User, len(rows))
	for i, row := range rows {
		users[i] = *ConvertToModelUser(row)
	}
	return users, nil
}

func (us UserService) UpdateUser(ctx context.Context, user *muser.User) error {
	return us.queries.UpdateUser(ctx, gen.UpdateUserParams{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.ID,
	})
}

func (us UserService) DeleteUser(ctx context.Context, id idwrap.IDWrap) error {
	return us.queries.DeleteUser(ctx, id)
}
