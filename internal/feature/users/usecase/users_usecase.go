// Package usecase implements user directory lookups on top of the shared
// user store.
package usecase

import (
	"context"
	"errors"

	"tuneeng_backend/internal/feature/auth/domain/entity"
	authusecase "tuneeng_backend/internal/feature/auth/usecase"
)

var (
	// ErrUserNotFound is returned when the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when a user requests a record other than
	// their own.
	ErrForbidden = errors.New("not authorized to access this user")
)

// UserReader is the read-side of the user store needed by this usecase.
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

// UsersUsecase lists registered users and resolves individual records.
type UsersUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, requesterID, targetID uint) (*entity.User, error)
}

type usersUsecase struct {
	users UserReader
}

func NewUsersUsecase(users UserReader) UsersUsecase {
	return &usersUsecase{users: users}
}

func (u *usersUsecase) List(ctx context.Context) ([]*entity.User, error) {
	return u.users.List(ctx)
}

// Get returns the target user record. Users may only read their own record;
// the ownership check runs before the lookup so an outsider cannot probe
// which ids exist.
func (u *usersUsecase) Get(ctx context.Context, requesterID, targetID uint) (*entity.User, error) {
	if requesterID != targetID {
		return nil, ErrForbidden
	}
	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
