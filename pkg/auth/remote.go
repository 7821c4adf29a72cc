package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/pkg/clients"
)

const userInfoPath = "/auth/v1/user"

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RemoteValidator asks the auth provider who the token belongs to on every
// call.
type RemoteValidator struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func NewRemoteValidator(baseURL, apiKey string, client clients.HTTPClientI) *RemoteValidator {
	return &RemoteValidator{
		url:    strings.TrimRight(baseURL, "/") + userInfoPath,
		apiKey: apiKey,
		client: client,
	}
}

func (v *RemoteValidator) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		headers.Set("apikey", v.apiKey)
	}

	statusCode, body, _, err := v.client.Get(ctx, v.url, headers)
	if err != nil {
		zap.L().Error("auth provider request failed", zap.Error(err))
		return nil, domain.NewError(domain.ErrUnavailable, "Auth provider is unavailable")
	}
	if statusCode >= http.StatusInternalServerError {
		zap.L().Error("auth provider request failed", zap.Int("status", statusCode))
		return nil, domain.NewError(domain.ErrUnavailable, "Auth provider is unavailable")
	}
	if statusCode != http.StatusOK {
		return nil, errInvalidToken
	}

	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, errInvalidToken
	}
	if _, err := uuid.Parse(user.ID); err != nil {
		return nil, errInvalidToken
	}

	return &domain.Identity{ID: user.ID, Email: user.Email}, nil
}
