package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

type stubOrderRepo struct {
	orders []*domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	copy := *o
	r.orders = append(r.orders, &copy)
	return nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	out := []*domain.Order{}
	for _, o := range r.orders {
		if o.BuyerID == userID || o.CreatorID == userID {
			copy := *o
			out = append(out, &copy)
		}
	}
	return out, nil
}

func TestOrderService_Place_CopiesListingPrice(t *testing.T) {
	listings := newStubListingRepo()
	orders := &stubOrderRepo{}
	listingSvc := NewListingService(listings, newStubListingCache(), zerolog.Nop())
	svc := NewOrderService(orders, listings, zerolog.Nop())

	listing, err := listingSvc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create listing failed: %v", err)
	}

	order, err := svc.PlaceOrder(context.Background(), buyer(), ports.PlaceOrderInput{
		ServiceID:    listing.ID,
		Requirements: "make it blue",
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Price != listing.BasePrice {
		t.Fatalf("expected price %v, got %v", listing.BasePrice, order.Price)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.BuyerID != "buyer-1" || order.CreatorID != "creator-1" {
		t.Fatalf("order references wrong parties: %+v", order)
	}

	wantDelivery := order.CreatedAt.AddDate(0, 0, listing.DeliveryTimeDays)
	if !order.DeliveryDate.Equal(wantDelivery) {
		t.Fatalf("expected delivery %v, got %v", wantDelivery, order.DeliveryDate)
	}
}

func TestOrderService_Place_OwnListingForbidden(t *testing.T) {
	listings := newStubListingRepo()
	orders := &stubOrderRepo{}
	listingSvc := NewListingService(listings, newStubListingCache(), zerolog.Nop())
	svc := NewOrderService(orders, listings, zerolog.Nop())

	owner := creator()
	listing, err := listingSvc.CreateListing(context.Background(), owner, listingInput())
	if err != nil {
		t.Fatalf("create listing failed: %v", err)
	}

	if _, err := svc.PlaceOrder(context.Background(), owner, ports.PlaceOrderInput{
		ServiceID:    listing.ID,
		Requirements: "self-order",
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("expected no order to be created")
	}
}

func TestOrderService_Place_ListingNotFound(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, newStubListingRepo(), zerolog.Nop())

	if _, err := svc.PlaceOrder(context.Background(), buyer(), ports.PlaceOrderInput{
		ServiceID:    "missing",
		Requirements: "anything",
	}); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestOrderService_List_BuyerAndCreatorViews(t *testing.T) {
	listings := newStubListingRepo()
	orders := &stubOrderRepo{}
	listingSvc := NewListingService(listings, newStubListingCache(), zerolog.Nop())
	svc := NewOrderService(orders, listings, zerolog.Nop())

	listing, err := listingSvc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create listing failed: %v", err)
	}
	if _, err := svc.PlaceOrder(context.Background(), buyer(), ports.PlaceOrderInput{
		ServiceID:    listing.ID,
		Requirements: "make it blue",
	}); err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	asBuyer, err := svc.ListOrders(context.Background(), buyer())
	if err != nil {
		t.Fatalf("list as buyer failed: %v", err)
	}
	asCreator, err := svc.ListOrders(context.Background(), creator())
	if err != nil {
		t.Fatalf("list as creator failed: %v", err)
	}
	if len(asBuyer) != 1 || len(asCreator) != 1 {
		t.Fatalf("expected the order visible to both parties, got %d/%d", len(asBuyer), len(asCreator))
	}

	stranger := &domain.User{ID: "stranger", Role: domain.RoleBuyer}
	asStranger, err := svc.ListOrders(context.Background(), stranger)
	if err != nil {
		t.Fatalf("list as stranger failed: %v", err)
	}
	if len(asStranger) != 0 {
		t.Fatalf("expected no orders for an uninvolved user, got %d", len(asStranger))
	}
}

func TestOrderService_Place_SetsTimestamps(t *testing.T) {
	listings := newStubListingRepo()
	listingSvc := NewListingService(listings, newStubListingCache(), zerolog.Nop())
	svc := NewOrderService(&stubOrderRepo{}, listings, zerolog.Nop())

	listing, err := listingSvc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create listing failed: %v", err)
	}

	before := time.Now().UTC().Add(-time.Second)
	order, err := svc.PlaceOrder(context.Background(), buyer(), ports.PlaceOrderInput{
		ServiceID:    listing.ID,
		Requirements: "fast please",
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.CreatedAt.Before(before) {
		t.Fatalf("created_at not set: %v", order.CreatedAt)
	}
	if order.ID == "" {
		t.Fatalf("expected a generated order id")
	}
}
