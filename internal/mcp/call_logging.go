package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/rpggio/busybee/internal/auth"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// callTarget picks the entity a tool call touches out of its raw arguments.
type callTarget struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
}

// callLoggingMiddleware logs every tools/call with the tool name, the caller
// and the task or project it names. Other methods are logged at debug level.
func callLoggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil {
				return next(ctx, method, req)
			}

			call, ok := req.(*sdkmcp.CallToolRequest)
			if !ok || call.Params == nil {
				logger.Debug("mcp request", "method", method)
				return next(ctx, method, req)
			}

			attrs := []any{"tool", call.Params.Name}
			if id, ok := auth.IdentityFromContext(ctx); ok {
				attrs = append(attrs, "uid", id.UID)
			}
			attrs = append(attrs, targetAttrs(call.Params.Name, call.Params.Arguments)...)

			start := time.Now()
			result, err := next(ctx, method, req)
			attrs = append(attrs, "duration", time.Since(start))

			switch {
			case err != nil:
				logger.Warn("mcp tool call failed", append(attrs, "error", err)...)
			case isToolError(result):
				logger.Warn("mcp tool call returned error", attrs...)
			default:
				logger.Info("mcp tool call", attrs...)
			}
			return result, err
		}
	}
}

func targetAttrs(tool string, raw json.RawMessage) []any {
	if len(raw) == 0 {
		return nil
	}
	var target callTarget
	if err := json.Unmarshal(raw, &target); err != nil {
		return nil
	}

	var attrs []any
	if target.ID != "" {
		key := "task_id"
		if tool == "delete_project" {
			key = "project_id"
		}
		attrs = append(attrs, key, target.ID)
	}
	if target.ProjectID != "" && tool != "delete_project" {
		attrs = append(attrs, "project_id", target.ProjectID)
	}
	return attrs
}

func isToolError(result sdkmcp.Result) bool {
	res, ok := result.(*sdkmcp.CallToolResult)
	return ok && res != nil && res.IsError
}
