package main

import (
	"context"

	"github.com/spf13/cobra"
)

func tagsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				tags, err := s.store.RefreshTags(ctx)
				if err != nil {
					return err
				}
				s.println(s.styles.Tags(tags))
				return nil
			})
		},
	}
}
