package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

// ProfileService implements the creator-profile use cases.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, logger: logger}
}

// CreateProfile creates the caller's profile. Only creators may hold
// one; the unique index on user_id decides "already exists" at insert
// time.
func (s *ProfileService) CreateProfile(ctx context.Context, user *domain.User, input ports.CreateProfileInput) (*domain.CreatorProfile, error) {
	if user.Role != domain.RoleCreator {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	profile := &domain.CreatorProfile{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Bio:             input.Bio,
		Skills:          input.Skills,
		ExperienceLevel: input.ExperienceLevel,
		PortfolioItems:  []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	// Flag failure is non-fatal: the profile itself is the source of
	// truth, the flag is a denormalized convenience.
	if err := s.users.MarkProfileCompleted(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to mark profile completed")
	}

	s.logger.Info().Str("user_id", user.ID).Str("profile_id", profile.ID).Msg("creator profile created")
	return profile, nil
}

// GetProfile returns the caller's own profile.
func (s *ProfileService) GetProfile(ctx context.Context, user *domain.User) (*domain.CreatorProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile applies the non-nil fields of upd to the caller's own
// profile. Ownership is inherent: the lookup is keyed by the resolved
// identity, not a payload id.
func (s *ProfileService) UpdateProfile(ctx context.Context, user *domain.User, upd ports.ProfileUpdate) (*domain.CreatorProfile, error) {
	profile, err := s.profiles.Update(ctx, user.ID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
