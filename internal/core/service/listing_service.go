package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// ListingService implements the service-listing use cases. Single
// listing reads go through a read-through cache; cache failures are
// soft and fall back to the store.
type ListingService struct {
	listings ports.ListingRepository
	cache    ports.ListingCache
	logger   zerolog.Logger
}

func NewListingService(listings ports.ListingRepository, cache ports.ListingCache, logger zerolog.Logger) *ListingService {
	return &ListingService{listings: listings, cache: cache, logger: logger}
}

// CreateListing publishes a new active listing owned by user.
func (s *ListingService) CreateListing(ctx context.Context, user *domain.User, input ports.CreateListingInput) (*domain.ServiceListing, error) {
	if user.Role != domain.RoleCreator {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	listing := &domain.ServiceListing{
		ID:                uuid.NewString(),
		CreatorID:         user.ID,
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		Tags:              input.Tags,
		BasePrice:         input.BasePrice,
		DeliveryTimeDays:  input.DeliveryTimeDays,
		RevisionsIncluded: input.RevisionsIncluded,
		Images:            input.Images,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if listing.Tags == nil {
		listing.Tags = []string{}
	}
	if listing.Images == nil {
		listing.Images = []string{}
	}
	if listing.RevisionsIncluded == 0 {
		listing.RevisionsIncluded = 1
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.logger.Info().Str("listing_id", listing.ID).Str("creator_id", user.ID).Str("category", listing.Category).Msg("listing created")
	return listing, nil
}

// UpdateListing applies upd to the listing. Only the owning creator
// may update; the cached copy is dropped after a successful write.
func (s *ListingService) UpdateListing(ctx context.Context, user *domain.User, id string, upd ports.ListingUpdate) (*domain.ServiceListing, error) {
	existing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatorID != user.ID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.listings.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("listing_id", id).Msg("failed to invalidate listing cache")
	}
	return updated, nil
}

// GetListing returns one listing by id, consulting the cache first.
func (s *ListingService) GetListing(ctx context.Context, id string) (*domain.ServiceListing, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("listing_id", id).Msg("listing cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listing); err != nil {
		s.logger.Warn().Err(err).Str("listing_id", id).Msg("listing cache write failed")
	}
	return listing, nil
}

// SearchListings translates the optional filters straight into store
// predicates. Only active listings are returned; price bounds are
// inclusive; no ranking beyond the store's own text scoring.
func (s *ListingService) SearchListings(ctx context.Context, filter ports.ListingFilter) ([]*domain.ServiceListing, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.listings.List(ctx, filter)
}

// ListCreatorListings returns a creator's active listings.
func (s *ListingService) ListCreatorListings(ctx context.Context, creatorID string) ([]*domain.ServiceListing, error) {
	return s.listings.ListByCreator(ctx, creatorID)
}
