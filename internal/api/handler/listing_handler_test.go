package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

type stubListingService struct {
	lastFilter ports.ListingFilter
	lastID     string
	listing    *domain.ServiceListing
	listings   []*domain.ServiceListing
	err        error
}

func (s *stubListingService) CreateListing(_ context.Context, _ *domain.User, _ ports.CreateListingInput) (*domain.ServiceListing, error) {
	return s.listing, s.err
}

func (s *stubListingService) UpdateListing(_ context.Context, _ *domain.User, id string, _ ports.ListingUpdate) (*domain.ServiceListing, error) {
	s.lastID = id
	return s.listing, s.err
}

func (s *stubListingService) GetListing(_ context.Context, id string) (*domain.ServiceListing, error) {
	s.lastID = id
	return s.listing, s.err
}

func (s *stubListingService) SearchListings(_ context.Context, filter ports.ListingFilter) ([]*domain.ServiceListing, error) {
	s.lastFilter = filter
	return s.listings, s.err
}

func (s *stubListingService) ListCreatorListings(_ context.Context, creatorID string) ([]*domain.ServiceListing, error) {
	s.lastID = creatorID
	return s.listings, s.err
}

func newQueryContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListingHandler_Search_ParsesFilters(t *testing.T) {
	stub := &stubListingService{listings: []*domain.ServiceListing{}}
	h := NewListingHandler(stub)

	c, rec := newQueryContext(t, "/services?category=design&search=logo&min_price=10.5&max_price=200&limit=50&skip=5")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	f := stub.lastFilter
	if f.Category != "design" || f.Search != "logo" {
		t.Fatalf("unexpected text filters: %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 10.5 {
		t.Fatalf("min_price not parsed: %+v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 200 {
		t.Fatalf("max_price not parsed: %+v", f.MaxPrice)
	}
	if f.Limit != 50 || f.Skip != 5 {
		t.Fatalf("pagination not parsed: limit=%d skip=%d", f.Limit, f.Skip)
	}
}

func TestListingHandler_Search_NoParamsLeaveFilterEmpty(t *testing.T) {
	stub := &stubListingService{listings: []*domain.ServiceListing{}}
	h := NewListingHandler(stub)

	c, _ := newQueryContext(t, "/services")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	f := stub.lastFilter
	if f.MinPrice != nil || f.MaxPrice != nil || f.Limit != 0 || f.Skip != 0 {
		t.Fatalf("expected zero filter, got %+v", f)
	}
}

func TestListingHandler_Search_BadNumberRejected(t *testing.T) {
	for _, target := range []string{
		"/services?min_price=cheap",
		"/services?max_price=lots",
		"/services?limit=many",
		"/services?skip=few",
	} {
		stub := &stubListingService{}
		h := NewListingHandler(stub)

		c, _ := newQueryContext(t, target)

		err := h.Search(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", target, err)
		}
	}
}

func TestListingHandler_Get_PassesID(t *testing.T) {
	stub := &stubListingService{listing: &domain.ServiceListing{ID: "svc-1", Title: "Logo design"}}
	h := NewListingHandler(stub)

	c, rec := newQueryContext(t, "/services/svc-1")
	c.SetParamNames("id")
	c.SetParamValues("svc-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastID != "svc-1" {
		t.Fatalf("id not forwarded: %q", stub.lastID)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Logo design" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestListingHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubListingService{err: domain.ErrListingNotFound}
	h := NewListingHandler(stub)

	c, _ := newQueryContext(t, "/services/missing")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound to propagate, got %v", err)
	}
}

func TestListingHandler_Create_RequiresAuthenticatedUser(t *testing.T) {
	h := NewListingHandler(&stubListingService{})

	c, _ := newTestContext(t, http.MethodPost, "/services", `{"title":"x"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth middleware, got %v", err)
	}
}

func TestListingHandler_Create_ValidationRejectsZeroPrice(t *testing.T) {
	h := NewListingHandler(&stubListingService{})

	c, _ := newTestContext(t, http.MethodPost, "/services",
		`{"title":"Logo","description":"d","category":"design","base_price":0,"delivery_time_days":3}`)
	c.Set("current_user", &domain.User{ID: "u1", Role: domain.RoleCreator})

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero base_price, got %v", err)
	}
}

func TestListingHandler_Update_ForwardsIDAndBody(t *testing.T) {
	stub := &stubListingService{listing: &domain.ServiceListing{ID: "svc-9"}}
	h := NewListingHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/services/svc-9", `{"base_price":150}`)
	c.SetParamNames("id")
	c.SetParamValues("svc-9")
	c.Set("current_user", &domain.User{ID: "u1", Role: domain.RoleCreator})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastID != "svc-9" {
		t.Fatalf("id not forwarded: %q", stub.lastID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
