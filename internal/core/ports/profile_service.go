package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// CreateProfileInput carries the caller-supplied profile fields; the
// owning user comes from the resolved identity, never the payload.
type CreateProfileInput struct {
	Bio             string
	Skills          []string
	ExperienceLevel string
}

// ProfileService implements the creator-profile use cases.
type ProfileService interface {
	// CreateProfile creates the profile for user and marks the account
	// profile_completed. Only creators may hold a profile.
	CreateProfile(ctx context.Context, user *domain.User, input CreateProfileInput) (*domain.CreatorProfile, error)
	GetProfile(ctx context.Context, user *domain.User) (*domain.CreatorProfile, error)
	UpdateProfile(ctx context.Context, user *domain.User, upd ProfileUpdate) (*domain.CreatorProfile, error)
}
