package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

const (
	EnvServiceAccountBase64 = "FIREBASE_SERVICE_ACCOUNT_BASE64"
	EnvServiceAccountJSON   = "FIREBASE_SERVICE_ACCOUNT_JSON"
)

// ErrNoCredentials is returned when no service account source is configured.
var ErrNoCredentials = errors.New("firebase credentials not found")

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier validates Firebase ID tokens with the Admin SDK.
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier initializes a Firebase app from service account JSON.
func NewFirebaseVerifier(ctx context.Context, credentials []byte) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase auth: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

// Verify validates an ID token and reads email and name from its claims.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if decoded.UID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UID:   decoded.UID,
		Email: stringClaim(decoded.Claims, "email"),
		Name:  stringClaim(decoded.Claims, "name"),
	}, nil
}

func stringClaim(claims map[string]any, key string) *string {
	s, _ := claims[key].(string)
	return optional(s)
}

// LoadCredentials resolves service account JSON from the base64 env var, the raw
// JSON env var, or the file at path, in that order.
func LoadCredentials(lookupEnv func(string) (string, bool), path string) ([]byte, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if encoded, ok := lookupEnv(EnvServiceAccountBase64); ok && strings.TrimSpace(encoded) != "" {
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", EnvServiceAccountBase64, err)
		}
		return data, nil
	}

	if raw, ok := lookupEnv(EnvServiceAccountJSON); ok && strings.TrimSpace(raw) != "" {
		return []byte(raw), nil
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	return nil, fmt.Errorf("%w: set %s, %s, or provide %q",
		ErrNoCredentials, EnvServiceAccountBase64, EnvServiceAccountJSON, path)
}
