package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace/internal/api/metrics"
	"github.com/creatorhub/marketplace/internal/api/middleware"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

// OrderHandler handles order placement and retrieval.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type placeOrderRequest struct {
	ServiceID    string `json:"service_id"   validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
}

// Place handles POST /orders.
//
// @Summary      Place an order for a listing
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      200   {object}  domain.Order
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), user, ports.PlaceOrderInput{
		ServiceID:    req.ServiceID,
		Requirements: req.Requirements,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusOK, order)
}

// List handles GET /orders — the caller's orders as buyer or creator.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
