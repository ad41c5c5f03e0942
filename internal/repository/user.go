package repository

import (
	"context"

	"fakeuser/internal/domain"
)

// UserRepository defines persistence operations for User records.
//
// Lookups and writes on a missing id return domain.ErrUserNotFound; uniqueness
// clashes on uuid or email return an error wrapping domain.ErrConstraintViolation.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}
