package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/client"
	"github.com/rpggio/busybee/internal/render"
)

// session is the state shared by client commands.
type session struct {
	store  *client.Store
	styles *render.Styles
	out    io.Writer

	closeLog func()
}

func (o *rootOptions) session(out io.Writer) (*session, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	if cfg.Client.Token == "" {
		return nil, errors.New("no token: pass --token or set BUSYBEE_TOKEN")
	}
	logger, closeLog := slog.New(slog.DiscardHandler), func() {}
	if cfg.Log.Level == "debug" {
		logger, closeLog = newLogger(cfg.Log, os.Stderr)
	}

	api := client.New(cfg.Client.Endpoint, client.WithToken(cfg.Client.Token))
	return &session{
		store:    client.NewStore(api, client.WithLogger(logger)),
		styles:   render.NewStyles(lipgloss.NewRenderer(out), render.Hive),
		out:      out,
		closeLog: closeLog,
	}, nil
}

func (s *session) close() {
	s.store.Close()
	s.closeLog()
}

// flushToasts prints and dismisses pending notifications.
func (s *session) flushToasts() {
	for _, t := range s.store.Toasts.List() {
		fmt.Fprintln(s.out, s.styles.Toast(t))
		s.store.Toasts.Remove(t.ID)
	}
}

func (s *session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// run loads the board, then calls fn and prints any notifications it raised.
func (s *session) run(ctx context.Context, fn func(context.Context) error) error {
	defer s.flushToasts()
	if err := s.store.Load(ctx); err != nil {
		if msg := s.store.Err.Get(); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return fn(ctx)
}

// findTask resolves a full or abbreviated task ID.
func (s *session) findTask(prefix string) (board.Task, error) {
	var matches []board.Task
	for _, t := range s.store.Tasks.Get() {
		if t.ID == prefix {
			return t, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}
	return single(matches, prefix, "task")
}

// findProject resolves a full or abbreviated project ID, or an exact name.
func (s *session) findProject(ref string) (board.Project, error) {
	var matches []board.Project
	for _, p := range s.store.Projects.Get() {
		if p.ID == ref || strings.EqualFold(p.Name, ref) {
			return p, nil
		}
		if strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p)
		}
	}
	return single(matches, ref, "project")
}

func single[T any](matches []T, ref, kind string) (T, error) {
	var zero T
	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("no %s matches %q", kind, ref)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%q matches %d %ss; use a longer ID", ref, len(matches), kind)
	}
}
