package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rpggio/busybee/internal/auth"
)

// Access guard rejection messages.
const (
	MsgMissingHeader = "missing header"
	MsgMissingToken  = "missing token"
	MsgInvalidToken  = "invalid token"
)

// AuthError is returned when a call lacks a valid bearer credential.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "unauthenticated: " + e.Message
}

// BearerToken extracts the credential from an Authorization header value.
func BearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", &AuthError{Message: MsgMissingHeader}
	}

	token := strings.TrimSpace(header)
	if scheme, rest, _ := strings.Cut(token, " "); strings.EqualFold(scheme, "Bearer") {
		token = strings.TrimSpace(rest)
	}
	if token == "" {
		return "", &AuthError{Message: MsgMissingToken}
	}
	return token, nil
}

// Authenticate runs the access guard against request headers.
func Authenticate(ctx context.Context, verifier auth.Verifier, header http.Header) (auth.Identity, error) {
	token, err := BearerToken(header.Get("Authorization"))
	if err != nil {
		return auth.Identity{}, err
	}

	id, err := verifier.Verify(ctx, token)
	if err != nil || id.UID == "" {
		return auth.Identity{}, &AuthError{Message: MsgInvalidToken}
	}
	return id, nil
}

// AuthMiddleware enforces bearer token authentication and attaches the verified identity.
func AuthMiddleware(verifier auth.Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := Authenticate(r.Context(), verifier, r.Header)
			if err != nil {
				logger.Debug("request rejected", "path", r.URL.Path, "error", err)
				WriteAuthError(w, err)
				return
			}

			logger.Debug("request authenticated", "path", r.URL.Path, "uid", id.UID)
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

// WriteAuthError writes a 401 with a GraphQL-shaped error body.
func WriteAuthError(w http.ResponseWriter, err error) {
	message := MsgInvalidToken
	if authErr, ok := err.(*AuthError); ok {
		message = authErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(Response{
		Errors: []ErrorObject{{
			Message:    message,
			Extensions: map[string]any{"code": CodeUnauthenticated},
		}},
	})
}
