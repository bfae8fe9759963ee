package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers are the application endpoints mounted by NewServer.
type Handlers struct {
	GraphQL http.Handler
	// MCP authenticates inside the protocol layer, so it is mounted outside the guard.
	MCP http.Handler
}

// NewServer creates an HTTP server router with middleware.
func NewServer(handlers Handlers, authMiddleware func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)

	if handlers.MCP != nil {
		r.Handle("/mcp", handlers.MCP)
		r.Handle("/mcp/*", handlers.MCP)
	}

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Method(http.MethodPost, "/graphql", handlers.GraphQL)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
