package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DevClaims are the claims carried by locally signed development tokens.
type DevClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier accepts HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates token.
func (v *JWTVerifier) Verify(_ context.Context, token string) (Identity, error) {
	claims := &DevClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UID:   claims.Subject,
		Email: optional(claims.Email),
		Name:  optional(claims.Name),
	}, nil
}

// SignDevToken mints an HS256 token for id that expires after ttl.
// A zero ttl produces a token without expiry.
func SignDevToken(secret string, id Identity, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is required")
	}
	if id.UID == "" {
		return "", errors.New("uid is required")
	}

	now := time.Now()
	claims := DevClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id.UID,
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   "busybee",
		},
	}
	if id.Email != nil {
		claims.Email = *id.Email
	}
	if id.Name != nil {
		claims.Name = *id.Name
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
