package mcp

import (
	"context"

	"github.com/rpggio/busybee/internal/auth"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolFunc adapts a handler method to the SDK's typed tool handler, resolving
// the caller identity first.
func toolFunc[In, Out any](fn func(context.Context, auth.Identity, In) (Out, error)) sdkmcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		var zero Out
		id, err := getIdentity(ctx)
		if err != nil {
			return nil, zero, err
		}
		out, err := fn(ctx, id, in)
		if err != nil {
			return nil, zero, err
		}
		return nil, out, nil
	}
}

func noParams[Out any](fn func(context.Context, auth.Identity) (Out, error)) func(context.Context, auth.Identity, ListProjectsParams) (Out, error) {
	return func(ctx context.Context, id auth.Identity, _ ListProjectsParams) (Out, error) {
		return fn(ctx, id)
	}
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List the caller's projects, oldest first",
	}, toolFunc(noParams(h.ListProjects)))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project to group tasks",
	}, toolFunc(h.CreateProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project. Its tasks are kept and still reference the deleted project id",
	}, toolFunc(h.DeleteProject))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List the caller's tasks (incomplete first, then by due date and priority), optionally filtered",
	}, toolFunc(h.ListTasks))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_task",
		Description: "Get a single task by id",
	}, toolFunc(h.GetTask))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_tasks",
		Description: "Find tasks whose title contains the given text, ignoring case",
	}, toolFunc(h.SearchTasks))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Create a task in a project",
	}, toolFunc(h.CreateTask))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Change only the supplied fields of a task",
	}, toolFunc(h.UpdateTask))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_task",
		Description: "Delete a task and return it",
	}, toolFunc(h.RemoveTask))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "task_stats",
		Description: "Counts of total, active, completed, due today, overdue, upcoming and high-priority tasks, plus all tags",
	}, toolFunc(noParams(h.TaskStats)))
}
