package ports

import (
	"context"

	"github.com/famgift/exchange-system/internal/core/domain"
)

// LoginInput carries the credentials posted by the login form.
type LoginInput struct {
	GroupID  string
	Username string
	Password string
	// Language is the UI language toggle; carried in the session token,
	// nothing server-side depends on it.
	Language string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token       string
	Participant *domain.Participant
	Group       *domain.Group
}

// AuthService validates credentials against a group's roster and mints
// session tokens.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}
