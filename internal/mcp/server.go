package mcp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rpggio/busybee/internal/auth"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Transport modes.
const (
	ModeHTTP  = "http"
	ModeStdio = "stdio"
)

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Tasks    TaskService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Verifier      auth.Verifier
	TransportMode string
	// LocalUser is the identity used in stdio mode.
	LocalUser string
	Version   string
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "busybee",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	// Middleware added last runs first, so identity is attached before calls are logged.
	server.AddReceivingMiddleware(callLoggingMiddleware(logger))
	if cfg.TransportMode == ModeStdio {
		server.AddReceivingMiddleware(localIdentityMiddleware(cfg.LocalUser))
	} else {
		server.AddReceivingMiddleware(authMiddleware(cfg.Verifier))
	}

	registerTools(server, NewHandler(cfg.Services.Projects, cfg.Services.Tasks))

	return server
}

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
}
