package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/form"
)

func tasksCmd(opts *rootOptions) *cobra.Command {
	var (
		filters   = board.DefaultFilters()
		status    string
		priority  string
		project   string
		date      string
		showStats bool
	)
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks",
		Long: `List tasks, newest data from the server, filtered locally.

Examples:
  busybee tasks --status active --date overdue
  busybee tasks --search report --priority HIGH
  busybee tasks --project Work --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(context.Context) error {
				f := filters
				f.Status = board.Status(strings.ToLower(status))
				f.Date = board.DateBucket(strings.ToLower(date))
				p, ok := board.ParsePriorityFilter(priority)
				if !ok {
					return fmt.Errorf("unknown priority %q", priority)
				}
				f.Priority = p
				if project != "" && project != board.All {
					proj, err := s.findProject(project)
					if err != nil {
						return err
					}
					f.Project = proj.ID
				}
				if err := validateFilters(f); err != nil {
					return err
				}
				s.store.SetFilters(f)

				s.println(s.styles.TaskList(s.store.Visible.Get(), s.store.Projects.Get(), time.Now()))
				if showStats {
					s.println(s.styles.Stats(s.store.Stats.Get()))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "match title, description or tags")
	cmd.Flags().StringVar(&status, "status", string(board.StatusAll), "all, active or completed")
	cmd.Flags().StringVar(&priority, "priority", board.All, "all, LOW, MEDIUM or HIGH")
	cmd.Flags().StringVarP(&project, "project", "p", board.All, "project ID or name")
	cmd.Flags().StringVar(&date, "date", string(board.DateAll), "all, today, overdue or upcoming")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print summary counts")

	cmd.AddCommand(tasksAddCmd(opts))
	cmd.AddCommand(tasksEditCmd(opts))
	cmd.AddCommand(tasksDoneCmd(opts))
	cmd.AddCommand(tasksRemoveCmd(opts))
	return cmd
}

func validateFilters(f board.Filters) error {
	switch f.Status {
	case board.StatusAll, board.StatusActive, board.StatusCompleted:
	default:
		return fmt.Errorf("unknown status %q", f.Status)
	}
	switch f.Date {
	case board.DateAll, board.DateToday, board.DateOverdue, board.DateUpcoming:
	default:
		return fmt.Errorf("unknown date filter %q", f.Date)
	}
	return nil
}

type taskFlags struct {
	project     string
	priority    string
	description string
	due         string
	tags        []string
}

func (tf *taskFlags) register(cmd *cobra.Command, defaultPriority string) {
	cmd.Flags().StringVarP(&tf.project, "project", "p", "", "project ID or name")
	cmd.Flags().StringVar(&tf.priority, "priority", defaultPriority, "LOW, MEDIUM or HIGH")
	cmd.Flags().StringVarP(&tf.description, "description", "d", "", "longer description")
	cmd.Flags().StringVar(&tf.due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringSliceVarP(&tf.tags, "tag", "t", nil, "tag (repeatable)")
}

func formError(err error) error {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("invalid task: %s", strings.TrimPrefix(verr.Error(), "invalid form: "))
	}
	return err
}

func tasksAddCmd(opts *rootOptions) *cobra.Command {
	var tf taskFlags
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				if tf.project == "" {
					return errors.New("--project is required")
				}
				proj, err := s.findProject(tf.project)
				if err != nil {
					return err
				}

				known, err := s.store.RefreshTags(ctx)
				if err != nil {
					return err
				}
				f := form.NewTaskForm(proj.ID, known)
				f.Title = strings.Join(args, " ")
				f.Description = tf.description
				f.Priority = task.Priority(strings.ToUpper(tf.priority))
				f.DueDate = tf.due
				for _, tag := range tf.tags {
					f.AddTag(tag)
				}

				input, err := f.CreateInput()
				if err != nil {
					return formError(err)
				}
				created, err := s.store.CreateTask(ctx, input)
				if err != nil {
					return err
				}
				s.println(s.styles.Task(created, &proj, time.Now()))
				return nil
			})
		},
	}
	tf.register(cmd, string(task.PriorityMedium))
	return cmd
}

func tasksEditCmd(opts *rootOptions) *cobra.Command {
	var (
		tf         taskFlags
		title      string
		removeTags []string
		clearDue   bool
		clearDesc  bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				current, err := s.findTask(args[0])
				if err != nil {
					return err
				}

				known, err := s.store.RefreshTags(ctx)
				if err != nil {
					return err
				}
				f := form.EditTaskForm(current, known, time.Local)
				flags := cmd.Flags()
				if flags.Changed("title") {
					f.Title = title
				}
				if flags.Changed("description") {
					f.Description = tf.description
				}
				if clearDesc {
					f.Description = ""
				}
				if flags.Changed("priority") {
					f.Priority = task.Priority(strings.ToUpper(tf.priority))
				}
				if flags.Changed("due") {
					f.DueDate = tf.due
				}
				if clearDue {
					f.DueDate = ""
				}
				if flags.Changed("project") {
					proj, err := s.findProject(tf.project)
					if err != nil {
						return err
					}
					f.ProjectID = proj.ID
				}
				for _, tag := range tf.tags {
					f.AddTag(tag)
				}
				for _, tag := range removeTags {
					f.RemoveTag(tag)
				}

				input, err := f.UpdateInput()
				if err != nil {
					return formError(err)
				}
				updated, err := s.store.UpdateTask(ctx, input)
				if err != nil {
					return err
				}
				var projRef *board.Project
				if proj, ok := s.store.Project(updated.ProjectID); ok {
					projRef = &proj
				}
				s.println(s.styles.Task(updated, projRef, time.Now()))
				return nil
			})
		},
	}
	tf.register(cmd, "")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringSliceVar(&removeTags, "untag", nil, "tag to remove (repeatable)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "remove the due date")
	cmd.Flags().BoolVar(&clearDesc, "clear-description", false, "remove the description")
	return cmd
}

func tasksDoneCmd(opts *rootOptions) *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed (or active with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				current, err := s.findTask(args[0])
				if err != nil {
					return err
				}
				if current.Completed == !undo {
					return nil
				}
				_, err = s.store.ToggleTask(ctx, current.ID)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "mark the task active again")
	return cmd
}

func tasksRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.close()

			return s.run(cmd.Context(), func(ctx context.Context) error {
				current, err := s.findTask(args[0])
				if err != nil {
					return err
				}
				return s.store.RemoveTask(ctx, current.ID)
			})
		},
	}
}
