package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/gitmarket/gitmarket/internal/domain"
)

// audience is the aud claim the auth provider puts on user sessions.
const audience = "authenticated"

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// JWTValidator verifies HS256 session tokens locally with the provider's
// signing secret.
type JWTValidator struct {
	secret []byte
}

func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

func (v *JWTValidator) GenerateJWT(userID, email string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			Audience:  audience,
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func (v *JWTValidator) Validate(_ context.Context, tokenString string) (*domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !claims.VerifyAudience(audience, true) {
		return nil, errInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errInvalidToken
	}

	return &domain.Identity{ID: claims.Subject, Email: claims.Email}, nil
}
