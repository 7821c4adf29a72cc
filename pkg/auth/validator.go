package auth

//go:generate mockgen -source=validator.go -destination=mock_validator.go -package=auth

import (
	"context"

	"github.com/gitmarket/gitmarket/internal/domain"
)

// TokenValidator resolves a bearer token to the identity it was issued for.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*domain.Identity, error)
}

var errInvalidToken = domain.NewError(domain.ErrUnauthenticated, "Invalid or expired token")
