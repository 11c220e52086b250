package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

// OrderService implements order placement and retrieval.
type OrderService struct {
	orders   ports.OrderRepository
	listings ports.ListingRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, listings ports.ListingRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, listings: listings, logger: logger}
}

// PlaceOrder creates a pending order for the listing. Price and
// delivery date come from the listing at placement time; ordering
// one's own listing is forbidden.
func (s *OrderService) PlaceOrder(ctx context.Context, buyer *domain.User, input ports.PlaceOrderInput) (*domain.Order, error) {
	listing, err := s.listings.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if listing.CreatorID == buyer.ID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:           uuid.NewString(),
		ServiceID:    listing.ID,
		BuyerID:      buyer.ID,
		CreatorID:    listing.CreatorID,
		Status:       domain.OrderPending,
		Price:        listing.BasePrice,
		Requirements: input.Requirements,
		DeliveryDate: now.AddDate(0, 0, listing.DeliveryTimeDays),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("service_id", listing.ID).Str("buyer_id", buyer.ID).Msg("order placed")
	return order, nil
}

// ListOrders returns the user's orders, whether they bought or sold.
func (s *OrderService) ListOrders(ctx context.Context, user *domain.User) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, user.ID)
}
