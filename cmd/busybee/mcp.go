package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/rpggio/busybee/internal/mcp"
)

func mcpCmd(opts *rootOptions) *cobra.Command {
	var localUser string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve MCP over stdio as the configured local user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if localUser != "" {
				cfg.MCP.LocalUser = localUser
			}

			// Stdout carries JSON-RPC, so logs go to stderr.
			logger, closeLog := newLogger(cfg.Log, os.Stderr)
			defer closeLog()

			svc, err := openServices(cfg, logger)
			if err != nil {
				logger.Error("failed to open database", "error", err)
				return err
			}
			defer svc.db.Close()

			server := mcp.NewServer(mcp.Config{
				Services:      mcp.Services{Projects: svc.projects, Tasks: svc.tasks},
				TransportMode: mcp.ModeStdio,
				LocalUser:     cfg.MCP.LocalUser,
				Version:       Version,
				Logger:        logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting stdio transport", "user", cfg.MCP.LocalUser)
			if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				logger.Error("stdio server error", "error", err)
				return err
			}
			logger.Info("shutting down")
			return nil
		},
	}
	cmd.Flags().StringVar(&localUser, "user", "", "user ID to act as (default from config)")
	return cmd
}
