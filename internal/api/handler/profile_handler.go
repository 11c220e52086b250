package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace/internal/api/middleware"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

// ProfileHandler handles creator-profile requests. All routes operate
// on the caller's own profile; ownership comes from the resolved
// identity, never the payload.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type createProfileRequest struct {
	Bio             string   `json:"bio"              validate:"required"`
	Skills          []string `json:"skills"           validate:"required"`
	ExperienceLevel string   `json:"experience_level" validate:"required,oneof=beginner intermediate expert"`
}

type updateProfileRequest struct {
	Bio             *string  `json:"bio"`
	Skills          []string `json:"skills"`
	ExperienceLevel *string  `json:"experience_level" validate:"omitempty,oneof=beginner intermediate expert"`
	PortfolioItems  []string `json:"portfolio_items"`
}

// Create handles POST /creators/profile.
//
// @Summary      Create the caller's creator profile
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile details"
// @Success      200   {object}  domain.CreatorProfile
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /creators/profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.CreateProfile(c.Request().Context(), user, ports.CreateProfileInput{
		Bio:             req.Bio,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Get handles GET /creators/profile.
//
// @Summary      Get the caller's creator profile
// @Tags         creators
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CreatorProfile
// @Failure      404  {object}  errorResponse
// @Router       /creators/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /creators/profile.
//
// @Summary      Update the caller's creator profile
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.CreatorProfile
// @Failure      404   {object}  errorResponse
// @Router       /creators/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.UpdateProfile(c.Request().Context(), user, ports.ProfileUpdate{
		Bio:             req.Bio,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		PortfolioItems:  req.PortfolioItems,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
