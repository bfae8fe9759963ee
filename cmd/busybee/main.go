package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpggio/busybee/internal/config"
)

var Version = "dev"

type rootOptions struct {
	configPath string
	endpoint   string
	token      string
}

func main() {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "busybee",
		Short:         "BusyBee - projects and tasks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config (overrides BUSYBEE_CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "GraphQL endpoint for client commands")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "bearer token for client commands")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(mcpCmd(opts))
	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(devTokenCmd(opts))
	rootCmd.AddCommand(tasksCmd(opts))
	rootCmd.AddCommand(projectsCmd(opts))
	rootCmd.AddCommand(tagsCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads configuration, letting command-line flags win over the file and environment.
func (o *rootOptions) load() (config.Config, error) {
	lookup := os.LookupEnv
	if o.configPath != "" {
		lookup = func(key string) (string, bool) {
			if key == "BUSYBEE_CONFIG_PATH" {
				return o.configPath, true
			}
			return os.LookupEnv(key)
		}
	}
	cfg, err := config.LoadFrom(lookup)
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	if o.endpoint != "" {
		cfg.Client.Endpoint = o.endpoint
	}
	if o.token != "" {
		cfg.Client.Token = o.token
	}
	return cfg, nil
}
