package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// TokenPair is issued on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService implements signup, login and token rotation.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// VerifyAccess validates an access token and returns the user id it
	// was issued for.
	VerifyAccess(token string) (uuid.UUID, error)
}
