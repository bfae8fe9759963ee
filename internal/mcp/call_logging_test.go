package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/rpggio/busybee/internal/auth"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestCallLoggingMiddleware_ToolCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	failNext := false
	next := func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		if failNext {
			return nil, errors.New("boom")
		}
		return &sdkmcp.CallToolResult{}, nil
	}
	handler := callLoggingMiddleware(logger)(next)
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UID: "uid1"})

	call := func(tool, args string) {
		req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: tool, Arguments: json.RawMessage(args)}}
		_, _ = handler(ctx, "tools/call", req)
	}

	call("update_task", `{"id":"t1","project_id":"p2"}`)
	call("delete_project", `{"id":"p1"}`)
	failNext = true
	call("get_task", `{"id":"missing"}`)
	failNext = false
	_, err := handler(ctx, "tools/list", &sdkmcp.ListToolsRequest{})
	require.NoError(t, err)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 4)

	require.Equal(t, "mcp tool call", lines[0]["msg"])
	require.Equal(t, "INFO", lines[0]["level"])
	require.Equal(t, "update_task", lines[0]["tool"])
	require.Equal(t, "uid1", lines[0]["uid"])
	require.Equal(t, "t1", lines[0]["task_id"])
	require.Equal(t, "p2", lines[0]["project_id"])

	require.Equal(t, "delete_project", lines[1]["tool"])
	require.Equal(t, "p1", lines[1]["project_id"])
	require.NotContains(t, lines[1], "task_id")

	require.Equal(t, "mcp tool call failed", lines[2]["msg"])
	require.Equal(t, "WARN", lines[2]["level"])
	require.Equal(t, "boom", lines[2]["error"])
	require.Equal(t, "missing", lines[2]["task_id"])

	require.Equal(t, "mcp request", lines[3]["msg"])
	require.Equal(t, "tools/list", lines[3]["method"])
}

func TestCallLoggingMiddleware_ToolErrorResult(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := func(context.Context, string, sdkmcp.Request) (sdkmcp.Result, error) {
		return &sdkmcp.CallToolResult{IsError: true}, nil
	}
	req := &sdkmcp.CallToolRequest{Params: &sdkmcp.CallToolParamsRaw{Name: "list_projects"}}
	_, err := callLoggingMiddleware(logger)(next)(context.Background(), "tools/call", req)
	require.NoError(t, err)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "mcp tool call returned error", lines[0]["msg"])
	require.Equal(t, "list_projects", lines[0]["tool"])
	require.NotContains(t, lines[0], "uid")
}
