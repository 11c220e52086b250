package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface the store's unique-index violation on email or
// username as domain.ErrUserExists; callers rely on the insert, not a
// prior read, as the uniqueness authority.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// MarkProfileCompleted flips the profile_completed flag after the
	// user's creator profile is created.
	MarkProfileCompleted(ctx context.Context, id string) error
}
