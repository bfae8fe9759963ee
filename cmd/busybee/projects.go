package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/form"
)

func projectsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(context.Context) error {
				s.println(s.styles.Projects(s.store.Projects.Get()))
				return nil
			})
		},
	}
	cmd.AddCommand(projectsAddCmd(opts))
	cmd.AddCommand(projectsRemoveCmd(opts))
	return cmd
}

func projectsAddCmd(opts *rootOptions) *cobra.Command {
	var color, icon string
	names := make([]string, 0, len(form.Palette))
	for _, c := range form.Palette {
		names = append(names, strings.ToLower(c.Name))
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				f := form.NewProjectForm()
				f.Name = strings.Join(args, " ")
				f.Color = form.ColorByName(color)
				f.Icon = icon

				input, err := f.CreateInput()
				if err != nil {
					var verr *form.ValidationError
					if errors.As(err, &verr) {
						return fmt.Errorf("invalid project: %s", strings.TrimPrefix(verr.Error(), "invalid form: "))
					}
					return err
				}
				created, err := s.store.CreateProject(ctx, input)
				if err != nil {
					return err
				}
				s.println(s.styles.Projects([]board.Project{created}))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", form.DefaultColor, "hex color or one of: "+strings.Join(names, ", "))
	cmd.Flags().StringVar(&icon, "icon", form.DefaultIcon, "emoji icon (empty for none)")
	return cmd
}

func projectsRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|name>",
		Aliases: []string{"remove"},
		Short:   "Delete a project (its tasks are kept)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				p, err := s.findProject(args[0])
				if err != nil {
					return err
				}
				return s.store.DeleteProject(ctx, p.ID)
			})
		},
	}
}
