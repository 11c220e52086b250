package ports

import (
	"context"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Role     string
	Password string
}

// AuthService establishes and verifies caller identity.
type AuthService interface {
	// Register creates an account and returns a session token for it.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies credentials and returns a session token. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Resolve validates a bearer token and returns the user it was
	// issued to. Every failure mode yields domain.ErrInvalidToken.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
