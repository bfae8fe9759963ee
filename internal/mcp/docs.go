package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `busybee manages a user's tasks, grouped into projects.

- Project: name, color, optional emoji icon. Deleting a project keeps its tasks.
- Task: title, optional description, priority (LOW, MEDIUM, HIGH), optional due date, tags, completed flag, project id.

Typical workflow:
1) list_projects to learn project ids (create_project if none fit).
2) list_tasks with filters, or search_tasks by title, to find work.
3) create_task / update_task (only supplied fields change) / remove_task.
4) task_stats for a quick overview.

Docs:
- busybee://docs/filters (how list_tasks filters and date buckets behave)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "busybee://docs/filters",
		Name:        "docs_filters",
		Title:       "Task filters and date buckets",
		Description: "How list_tasks filters combine and how due dates are bucketed.",
		Content: `# Task filters

Filters combine with AND, applied in this order:

1. search: case-insensitive substring of the title, the description, or any tag. Surrounding whitespace is ignored; empty means no constraint.
2. status: all, active (not completed) or completed.
3. priority: all or an exact priority.
4. project_id: only tasks in that project.
5. date: a due-date bucket.

## Date buckets

Days are compared as calendar dates, ignoring time of day.

- today: due date is today. Completed tasks are included.
- overdue: due date is before today and the task is not completed.
- upcoming: due date is tomorrow or later. Completed tasks are included.
- all: no constraint. Tasks without a due date only match all.

## Statistics

task_stats always counts the full list, never a filtered view. Its today, overdue and upcoming counts include only incomplete tasks, and high_priority counts incomplete HIGH tasks.

## Ordering

list_tasks returns incomplete tasks first, then by due date (tasks without one last), then by priority from HIGH to LOW, then oldest first.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
