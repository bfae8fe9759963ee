package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/stretchr/testify/require"
)

func identityEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := auth.IdentityFromContext(r.Context())
		_, _ = w.Write([]byte(id.UID))
	})
}

func TestHTTPServer_GraphQLGuarded(t *testing.T) {
	server := httptest.NewServer(NewServer(Handlers{GraphQL: identityEcho()}, AuthMiddleware(newTestVerifier(), nil)))
	t.Cleanup(server.Close)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/graphql", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(server.URL+"/graphql", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHTTPServer_Health(t *testing.T) {
	server := httptest.NewServer(NewServer(Handlers{GraphQL: identityEcho()}, AuthMiddleware(newTestVerifier(), nil)))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_MCPMountedOutsideGuard(t *testing.T) {
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	server := httptest.NewServer(NewServer(Handlers{GraphQL: identityEcho(), MCP: mcpHandler}, AuthMiddleware(newTestVerifier(), nil)))
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/mcp", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
}
