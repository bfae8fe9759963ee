package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/stretchr/testify/require"
)

type testVerifier struct {
	tokens map[string]auth.Identity
	calls  int
}

func (v *testVerifier) Verify(_ context.Context, token string) (auth.Identity, error) {
	v.calls++
	id, ok := v.tokens[token]
	if !ok {
		return auth.Identity{}, errors.New("expired credential")
	}
	return id, nil
}

func newTestVerifier() *testVerifier {
	return &testVerifier{tokens: map[string]auth.Identity{"token": {UID: "uid1"}}}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		token   string
		message string
	}{
		{name: "absent", header: "", message: MsgMissingHeader},
		{name: "scheme only", header: "Bearer", message: MsgMissingToken},
		{name: "scheme and spaces", header: "Bearer   ", message: MsgMissingToken},
		{name: "bearer", header: "Bearer abc", token: "abc"},
		{name: "lowercase scheme", header: "bearer abc", token: "abc"},
		{name: "bare token", header: "abc", token: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := BearerToken(tt.header)
			if tt.message != "" {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				require.Equal(t, tt.message, authErr.Message)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.token, token)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	verifier := newTestVerifier()

	handler := AuthMiddleware(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "uid1", id.UID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, verifier.calls)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing header", message: MsgMissingHeader},
		{name: "missing token", header: "Bearer ", message: MsgMissingToken},
		{name: "invalid token", header: "Bearer nope", message: MsgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newTestVerifier()
			handler := AuthMiddleware(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run")
			}))

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Errors, 1)
			require.Equal(t, tt.message, resp.Errors[0].Message)
			require.Equal(t, CodeUnauthenticated, resp.Errors[0].Code())
		})
	}
}

func TestAuthenticate_EmptyUIDIsInvalid(t *testing.T) {
	verifier := auth.VerifierFunc(func(context.Context, string) (auth.Identity, error) {
		return auth.Identity{}, nil
	})

	header := http.Header{}
	header.Set("Authorization", "Bearer token")
	_, err := Authenticate(context.Background(), verifier, header)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, MsgInvalidToken, authErr.Message)
}
