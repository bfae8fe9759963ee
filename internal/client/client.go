// Package client talks to the busybee GraphQL API and keeps reactive client state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/transport"
)

// Client is a GraphQL client for the busybee API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer credential sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the GraphQL endpoint.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	Data   json.RawMessage         `json:"data"`
	Errors []transport.ErrorObject `json:"errors"`
}

func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(transport.Request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var decoded response
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	if len(decoded.Errors) > 0 {
		first := decoded.Errors[0]
		return &Error{Code: first.Code(), Message: first.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	return nil
}

func (c *Client) Tasks(ctx context.Context) ([]board.Task, error) {
	var out struct {
		Tasks []board.Task `json:"tasks"`
	}
	if err := c.do(ctx, queryTasks, nil, &out); err != nil {
		return nil, err
	}
	return nonNilTasks(out.Tasks), nil
}

func (c *Client) Task(ctx context.Context, id string) (board.Task, error) {
	var out struct {
		Task board.Task `json:"task"`
	}
	err := c.do(ctx, queryTask, map[string]any{"id": id}, &out)
	return out.Task, err
}

func (c *Client) SearchTasksByTitle(ctx context.Context, title string) ([]board.Task, error) {
	var out struct {
		Tasks []board.Task `json:"searchTasksByTitle"`
	}
	if err := c.do(ctx, querySearchTasks, map[string]any{"title": title}, &out); err != nil {
		return nil, err
	}
	return nonNilTasks(out.Tasks), nil
}

func (c *Client) TaskStats(ctx context.Context) (board.Stats, error) {
	var out struct {
		Stats board.Stats `json:"taskStats"`
	}
	err := c.do(ctx, queryTaskStats, nil, &out)
	return out.Stats, err
}

func (c *Client) CreateTask(ctx context.Context, input board.CreateTaskInput) (board.Task, error) {
	var out struct {
		Task board.Task `json:"createTask"`
	}
	err := c.do(ctx, mutationCreateTask, map[string]any{"createTaskInput": input}, &out)
	return out.Task, err
}

func (c *Client) UpdateTask(ctx context.Context, input board.UpdateTaskInput) (board.Task, error) {
	var out struct {
		Task board.Task `json:"updateTask"`
	}
	err := c.do(ctx, mutationUpdateTask, map[string]any{"updateTaskInput": input}, &out)
	return out.Task, err
}

// ToggleCompletion flips the completed flag of t.
func (c *Client) ToggleCompletion(ctx context.Context, t board.Task) (board.Task, error) {
	completed := !t.Completed
	return c.UpdateTask(ctx, board.UpdateTaskInput{ID: t.ID, Completed: &completed})
}

func (c *Client) RemoveTask(ctx context.Context, id string) (board.Task, error) {
	var out struct {
		Task board.Task `json:"removeTask"`
	}
	err := c.do(ctx, mutationRemoveTask, map[string]any{"id": id}, &out)
	return out.Task, err
}

// AllTags fetches the task list and returns its distinct tags, sorted.
func (c *Client) AllTags(ctx context.Context) ([]string, error) {
	tasks, err := c.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return board.AllTags(tasks), nil
}

func (c *Client) Projects(ctx context.Context) ([]board.Project, error) {
	var out struct {
		Projects []board.Project `json:"projects"`
	}
	if err := c.do(ctx, queryProjects, nil, &out); err != nil {
		return nil, err
	}
	if out.Projects == nil {
		out.Projects = []board.Project{}
	}
	return out.Projects, nil
}

func (c *Client) Project(ctx context.Context, id string) (board.Project, error) {
	var out struct {
		Project board.Project `json:"project"`
	}
	err := c.do(ctx, queryProject, map[string]any{"id": id}, &out)
	return out.Project, err
}

func (c *Client) CreateProject(ctx context.Context, input board.CreateProjectInput) (board.Project, error) {
	var out struct {
		Project board.Project `json:"createProject"`
	}
	err := c.do(ctx, mutationCreateProject, map[string]any{"input": input}, &out)
	return out.Project, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) (board.Project, error) {
	var out struct {
		Project board.Project `json:"deleteProject"`
	}
	err := c.do(ctx, mutationDeleteProject, map[string]any{"id": id}, &out)
	return out.Project, err
}

func nonNilTasks(tasks []board.Task) []board.Task {
	if tasks == nil {
		return []board.Task{}
	}
	return tasks
}
