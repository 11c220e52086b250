package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// ListingFilter is a direct translation of the search query parameters
// into store predicates. Only active listings are ever returned.
type ListingFilter struct {
	Category string   // optional: exact match
	Search   string   // optional: full-text search over title/description/tags
	MinPrice *float64 // optional: base_price >= MinPrice (inclusive)
	MaxPrice *float64 // optional: base_price <= MaxPrice (inclusive)
	Limit    int      // rows per page (capped by the service)
	Skip     int      // rows to skip
}

// ListingUpdate carries the optional fields of a listing update; nil
// means "leave unchanged".
type ListingUpdate struct {
	Title             *string
	Description       *string
	Category          *string
	Tags              []string
	BasePrice         *float64
	DeliveryTimeDays  *int
	RevisionsIncluded *int
	Images            []string
	IsActive          *bool
}

// ListingRepository defines persistence operations for service listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.ServiceListing) error
	FindByID(ctx context.Context, id string) (*domain.ServiceListing, error)
	// Update applies the non-nil fields of upd and returns the updated
	// document, or domain.ErrListingNotFound.
	Update(ctx context.Context, id string, upd ListingUpdate) (*domain.ServiceListing, error)
	List(ctx context.Context, filter ListingFilter) ([]*domain.ServiceListing, error)
	// ListByCreator returns the creator's active listings.
	ListByCreator(ctx context.Context, creatorID string) ([]*domain.ServiceListing, error)
}

// ListingCache is a read-through cache for listing-by-id lookups.
// A miss returns (nil, nil); cache failures are soft and never block
// the underlying store read.
type ListingCache interface {
	Get(ctx context.Context, id string) (*domain.ServiceListing, error)
	Set(ctx context.Context, l *domain.ServiceListing) error
	Invalidate(ctx context.Context, id string) error
}
