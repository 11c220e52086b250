package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// CreateListingInput carries the caller-supplied listing fields.
type CreateListingInput struct {
	Title             string
	Description       string
	Category          string
	Tags              []string
	BasePrice         float64
	DeliveryTimeDays  int
	RevisionsIncluded int
	Images            []string
}

// ListingService implements the service-listing use cases.
type ListingService interface {
	// CreateListing publishes a new listing owned by user. Only
	// creators may publish.
	CreateListing(ctx context.Context, user *domain.User, input CreateListingInput) (*domain.ServiceListing, error)
	// UpdateListing applies upd to a listing; only the owning creator
	// may update.
	UpdateListing(ctx context.Context, user *domain.User, id string, upd ListingUpdate) (*domain.ServiceListing, error)
	GetListing(ctx context.Context, id string) (*domain.ServiceListing, error)
	SearchListings(ctx context.Context, filter ListingFilter) ([]*domain.ServiceListing, error)
	ListCreatorListings(ctx context.Context, creatorID string) ([]*domain.ServiceListing, error)
}
