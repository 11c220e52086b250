package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// ProfileUpdate carries the optional fields of a profile update; nil
// means "leave unchanged".
type ProfileUpdate struct {
	Bio             *string
	Skills          []string
	ExperienceLevel *string
	PortfolioItems  []string
}

// ProfileRepository defines persistence operations for creator profiles.
// The user_id unique index guarantees at most one profile per user.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.CreatorProfile) error
	FindByUserID(ctx context.Context, userID string) (*domain.CreatorProfile, error)
	// Update applies the non-nil fields of upd to the profile owned by
	// userID and returns the updated document.
	Update(ctx context.Context, userID string, upd ProfileUpdate) (*domain.CreatorProfile, error)
}
