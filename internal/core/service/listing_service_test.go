package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

type stubListingRepo struct {
	listings   map[string]*domain.ServiceListing
	lastFilter ports.ListingFilter
	findCalls  int
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{listings: make(map[string]*domain.ServiceListing)}
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.ServiceListing) error {
	copy := *l
	r.listings[l.ID] = &copy
	return nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.ServiceListing, error) {
	r.findCalls++
	if l, ok := r.listings[id]; ok {
		copy := *l
		return &copy, nil
	}
	return nil, domain.ErrListingNotFound
}

func (r *stubListingRepo) Update(_ context.Context, id string, upd ports.ListingUpdate) (*domain.ServiceListing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	if upd.Title != nil {
		l.Title = *upd.Title
	}
	if upd.BasePrice != nil {
		l.BasePrice = *upd.BasePrice
	}
	if upd.IsActive != nil {
		l.IsActive = *upd.IsActive
	}
	copy := *l
	return &copy, nil
}

func (r *stubListingRepo) List(_ context.Context, filter ports.ListingFilter) ([]*domain.ServiceListing, error) {
	r.lastFilter = filter
	return []*domain.ServiceListing{}, nil
}

func (r *stubListingRepo) ListByCreator(_ context.Context, creatorID string) ([]*domain.ServiceListing, error) {
	out := []*domain.ServiceListing{}
	for _, l := range r.listings {
		if l.CreatorID == creatorID && l.IsActive {
			copy := *l
			out = append(out, &copy)
		}
	}
	return out, nil
}

type stubListingCache struct {
	entries     map[string]*domain.ServiceListing
	getErr      error
	sets        int
	invalidates int
}

func newStubListingCache() *stubListingCache {
	return &stubListingCache{entries: make(map[string]*domain.ServiceListing)}
}

func (c *stubListingCache) Get(_ context.Context, id string) (*domain.ServiceListing, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if l, ok := c.entries[id]; ok {
		copy := *l
		return &copy, nil
	}
	return nil, nil
}

func (c *stubListingCache) Set(_ context.Context, l *domain.ServiceListing) error {
	c.sets++
	copy := *l
	c.entries[l.ID] = &copy
	return nil
}

func (c *stubListingCache) Invalidate(_ context.Context, id string) error {
	c.invalidates++
	delete(c.entries, id)
	return nil
}

func creator() *domain.User {
	return &domain.User{ID: "creator-1", Role: domain.RoleCreator}
}

func buyer() *domain.User {
	return &domain.User{ID: "buyer-1", Role: domain.RoleBuyer}
}

func listingInput() ports.CreateListingInput {
	return ports.CreateListingInput{
		Title:            "Logo design",
		Description:      "A custom logo",
		Category:         "design",
		BasePrice:        50,
		DeliveryTimeDays: 3,
	}
}

func TestListingService_Create_ForbidsBuyers(t *testing.T) {
	repo := newStubListingRepo()
	svc := NewListingService(repo, newStubListingCache(), zerolog.Nop())

	if _, err := svc.CreateListing(context.Background(), buyer(), listingInput()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.listings) != 0 {
		t.Fatalf("expected no listing to be created")
	}
}

func TestListingService_Create_Defaults(t *testing.T) {
	repo := newStubListingRepo()
	svc := NewListingService(repo, newStubListingCache(), zerolog.Nop())

	l, err := svc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !l.IsActive {
		t.Fatalf("expected new listing to be active")
	}
	if l.RevisionsIncluded != 1 {
		t.Fatalf("expected revisions to default to 1, got %d", l.RevisionsIncluded)
	}
	if l.Tags == nil || l.Images == nil {
		t.Fatalf("expected tags and images to be non-nil")
	}
	if l.CreatorID != "creator-1" {
		t.Fatalf("expected owner to be the caller, got %s", l.CreatorID)
	}
}

func TestListingService_Get_ReadThroughCache(t *testing.T) {
	repo := newStubListingRepo()
	cache := newStubListingCache()
	svc := NewListingService(repo, cache, zerolog.Nop())

	created, err := svc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.GetListing(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	storeReads := repo.findCalls
	second, err := svc.GetListing(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if repo.findCalls != storeReads {
		t.Fatalf("expected second read to be served from cache")
	}
	if first.ID != second.ID {
		t.Fatalf("cache returned a different listing")
	}
}

func TestListingService_Get_CacheFailureFallsBack(t *testing.T) {
	repo := newStubListingRepo()
	cache := newStubListingCache()
	cache.getErr = errors.New("redis down")
	svc := NewListingService(repo, cache, zerolog.Nop())

	created, err := svc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	l, err := svc.GetListing(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected fallback to the store, got %v", err)
	}
	if l.ID != created.ID {
		t.Fatalf("unexpected listing: %+v", l)
	}
}

func TestListingService_Update_OwnerOnly(t *testing.T) {
	repo := newStubListingRepo()
	cache := newStubListingCache()
	svc := NewListingService(repo, cache, zerolog.Nop())

	created, err := svc.CreateListing(context.Background(), creator(), listingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other := &domain.User{ID: "creator-2", Role: domain.RoleCreator}
	newTitle := "Stolen listing"
	if _, err := svc.UpdateListing(context.Background(), other, created.ID, ports.ListingUpdate{Title: &newTitle}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.UpdateListing(context.Background(), creator(), created.ID, ports.ListingUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.invalidates)
	}
}

func TestListingService_Search_LimitDefaultsAndCap(t *testing.T) {
	repo := newStubListingRepo()
	svc := NewListingService(repo, newStubListingCache(), zerolog.Nop())

	if _, err := svc.SearchListings(context.Background(), ports.ListingFilter{}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastFilter.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", repo.lastFilter.Limit)
	}

	if _, err := svc.SearchListings(context.Background(), ports.ListingFilter{Limit: 1000, Skip: -5}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastFilter.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", repo.lastFilter.Limit)
	}
	if repo.lastFilter.Skip != 0 {
		t.Fatalf("expected negative skip clamped to 0, got %d", repo.lastFilter.Skip)
	}
}
