package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, closeLog := newLogger(cfg.Log, os.Stderr)
			defer closeLog()

			svc, err := openServices(cfg, logger)
			if err != nil {
				return err
			}
			defer svc.db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Schema up to date (%s)\n", svc.db.Driver())
			return nil
		},
	}
}
