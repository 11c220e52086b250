package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// userContextKey is the echo context key the resolved user is stored
// under. Handlers read it back through CurrentUser.
const userContextKey = "current_user"

// TokenResolver validates a bearer token and returns the user it was
// issued to. Implemented by the auth service.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves it to a user, and injects
// the user into the request context. Every failure is a 401.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Auth, or a 401 when the
// middleware did not run (catches routes wired without it).
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(userContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
