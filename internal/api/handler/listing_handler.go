package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace/internal/api/metrics"
	"github.com/creatorhub/marketplace/internal/api/middleware"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

// ListingHandler handles service-listing requests.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

type createListingRequest struct {
	Title             string   `json:"title"              validate:"required"`
	Description       string   `json:"description"        validate:"required"`
	Category          string   `json:"category"           validate:"required"`
	Tags              []string `json:"tags"`
	BasePrice         float64  `json:"base_price"         validate:"required,gt=0"`
	DeliveryTimeDays  int      `json:"delivery_time_days" validate:"required,gt=0"`
	RevisionsIncluded int      `json:"revisions_included" validate:"gte=0"`
	Images            []string `json:"images"`
}

type updateListingRequest struct {
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	Tags              []string `json:"tags"`
	BasePrice         *float64 `json:"base_price"         validate:"omitempty,gt=0"`
	DeliveryTimeDays  *int     `json:"delivery_time_days" validate:"omitempty,gt=0"`
	RevisionsIncluded *int     `json:"revisions_included" validate:"omitempty,gte=0"`
	Images            []string `json:"images"`
	IsActive          *bool    `json:"is_active"`
}

// Create handles POST /services.
//
// @Summary      Publish a new service listing
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      200   {object}  domain.ServiceListing
// @Failure      403   {object}  errorResponse
// @Router       /services [post]
func (h *ListingHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.CreateListing(c.Request().Context(), user, ports.CreateListingInput{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Tags:              req.Tags,
		BasePrice:         req.BasePrice,
		DeliveryTimeDays:  req.DeliveryTimeDays,
		RevisionsIncluded: req.RevisionsIncluded,
		Images:            req.Images,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(listing.Category).Inc()
	return c.JSON(http.StatusOK, listing)
}

// Update handles PUT /services/:id.
//
// @Summary      Update an owned service listing
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Listing id"
// @Param        body  body      updateListingRequest  true  "Fields to change"
// @Success      200   {object}  domain.ServiceListing
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.UpdateListing(c.Request().Context(), user, c.Param("id"), ports.ListingUpdate{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Tags:              req.Tags,
		BasePrice:         req.BasePrice,
		DeliveryTimeDays:  req.DeliveryTimeDays,
		RevisionsIncluded: req.RevisionsIncluded,
		Images:            req.Images,
		IsActive:          req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Search handles GET /services. The optional query parameters map
// one-to-one onto store predicates; inactive listings never appear.
//
// @Summary      Search service listings
// @Tags         services
// @Produce      json
// @Param        category   query     string   false  "Category equality filter"
// @Param        search     query     string   false  "Free-text search"
// @Param        min_price  query     number   false  "Minimum base price (inclusive)"
// @Param        max_price  query     number   false  "Maximum base price (inclusive)"
// @Param        limit      query     integer  false  "Page size (default 20, max 100)"
// @Param        skip       query     integer  false  "Rows to skip"
// @Success      200        {array}   domain.ServiceListing
// @Failure      400        {object}  errorResponse
// @Router       /services [get]
func (h *ListingHandler) Search(c echo.Context) error {
	filter, err := parseListingFilter(c)
	if err != nil {
		return err
	}

	listings, err := h.service.SearchListings(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	metrics.ListingSearchesTotal.Inc()
	return c.JSON(http.StatusOK, listings)
}

// Get handles GET /services/:id.
//
// @Summary      Get a service listing by id
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.ServiceListing
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.service.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// ListByCreator handles GET /creators/:id/services.
//
// @Summary      List a creator's active listings
// @Tags         creators
// @Produce      json
// @Param        id   path     string  true  "Creator user id"
// @Success      200  {array}  domain.ServiceListing
// @Router       /creators/{id}/services [get]
func (h *ListingHandler) ListByCreator(c echo.Context) error {
	listings, err := h.service.ListCreatorListings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

func parseListingFilter(c echo.Context) (ports.ListingFilter, error) {
	filter := ports.ListingFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "min_price must be a number")
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
		}
		filter.MaxPrice = &v
	}
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		filter.Limit = v
	}
	if raw := c.QueryParam("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "skip must be an integer")
		}
		filter.Skip = v
	}
	return filter, nil
}
