package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// PlaceOrderInput carries the caller-supplied order fields. Price and
// delivery date are derived from the listing, never from the payload.
type PlaceOrderInput struct {
	ServiceID    string
	Requirements string
}

// OrderService implements order placement and retrieval. There is no
// status transition logic; orders are created pending.
type OrderService interface {
	// PlaceOrder creates a pending order for the listing. Ordering
	// one's own listing is forbidden.
	PlaceOrder(ctx context.Context, buyer *domain.User, input PlaceOrderInput) (*domain.Order, error)
	// ListOrders returns the user's orders, as buyer or as creator.
	ListOrders(ctx context.Context, user *domain.User) ([]*domain.Order, error)
}
