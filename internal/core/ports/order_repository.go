package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// ListByUser returns orders where the user is either the buyer or
	// the creator, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
