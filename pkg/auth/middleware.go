package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/pkg/utils"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

// ExtractToken strips an optional "Bearer " prefix from an Authorization
// header value.
func ExtractToken(header string) (string, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "Bearer "))
	if token == "" {
		return "", domain.NewError(domain.ErrUnauthenticated, "Missing authorization token")
	}
	return token, nil
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(domain.Identity)
	return identity, ok
}

// Middleware rejects requests whose bearer token validator does not accept.
func Middleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractToken(r.Header.Get("Authorization"))
			if err != nil {
				utils.RespondWithDomainError(w, err)
				return
			}

			identity, err := validator.Validate(r.Context(), token)
			if err != nil {
				utils.RespondWithDomainError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
		})
	}
}
