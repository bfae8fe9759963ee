package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/rpggio/busybee/internal/config"
	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/domain/user"
	"github.com/rpggio/busybee/internal/graph"
	"github.com/rpggio/busybee/internal/mcp"
	"github.com/rpggio/busybee/internal/sqlstore"
	"github.com/rpggio/busybee/internal/transport"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL API (and MCP over HTTP when enabled)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, closeLog := newLogger(cfg.Log, os.Stdout)
			defer closeLog()
			return runServe(cmd.Context(), cfg, logger)
		},
	}
}

type services struct {
	db       *sqlstore.DB
	projects *project.Service
	tasks    *task.Service
}

// openServices connects to the database, applies migrations and builds the domain services.
func openServices(cfg config.Config, logger *slog.Logger) (*services, error) {
	if cfg.DB.Driver == sqlstore.DriverSQLite {
		if err := ensureDBDir(cfg.DB.DSN); err != nil {
			return nil, fmt.Errorf("failed to prepare database path: %w", err)
		}
	}

	db, err := sqlstore.New(cfg.DB.Driver, cfg.DB.DSN, sqlstore.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	users := user.NewService(sqlstore.NewUserRepository(db), logger)
	return &services{
		db:       db,
		projects: project.NewService(sqlstore.NewProjectRepository(db), users, logger),
		tasks:    task.NewService(sqlstore.NewTaskRepository(db), users, logger),
	}, nil
}

func newVerifier(ctx context.Context, cfg config.AuthConfig) (auth.Verifier, error) {
	switch cfg.Provider {
	case config.AuthProviderJWT:
		return auth.NewJWTVerifier(cfg.JWTSecret)
	case config.AuthProviderFirebase:
		creds, err := auth.LoadCredentials(os.LookupEnv, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return auth.NewFirebaseVerifier(ctx, creds)
	default:
		return nil, fmt.Errorf("unsupported auth provider %q", cfg.Provider)
	}
}

func runServe(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := openServices(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return err
	}
	defer svc.db.Close()

	verifier, err := newVerifier(ctx, cfg.Auth)
	if err != nil {
		logger.Error("failed to initialize identity verifier", "provider", cfg.Auth.Provider, "error", err)
		return err
	}

	gql, err := graph.NewHandler(graph.NewResolver(svc.projects, svc.tasks, logger), logger)
	if err != nil {
		return err
	}

	handlers := transport.Handlers{GraphQL: gql}
	if cfg.MCP.Enabled {
		mcpServer := mcp.NewServer(mcp.Config{
			Services:      mcp.Services{Projects: svc.projects, Tasks: svc.tasks},
			Verifier:      verifier,
			TransportMode: mcp.ModeHTTP,
			Version:       Version,
			Logger:        logger,
		})
		handlers.MCP = mcp.NewHTTPHandler(mcpServer)
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           transport.NewServer(handlers, transport.AuthMiddleware(verifier, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", httpServer.Addr, "auth", cfg.Auth.Provider, "mcp", cfg.MCP.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return waitForShutdown(logger, httpServer, errCh)
}

func waitForShutdown(logger *slog.Logger, server *http.Server, errCh <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}

// ensureDBDir creates the parent directory of a SQLite file DSN.
func ensureDBDir(dsn string) error {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
