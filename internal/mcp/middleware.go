package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/rpggio/busybee/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// getIdentity extracts the caller identity from context.
func getIdentity(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return auth.Identity{}, fmt.Errorf("unauthorized: no identity")
	}
	return id, nil
}

func isProtocolMethod(method string) bool {
	return method == "initialize" || method == "ping" || strings.HasPrefix(method, "notifications/")
}

// authMiddleware runs the access guard against the HTTP headers of each request.
func authMiddleware(verifier auth.Verifier) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if isProtocolMethod(method) {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, &transport.AuthError{Message: transport.MsgMissingHeader}
			}

			id, err := transport.Authenticate(ctx, verifier, extra.Header)
			if err != nil {
				return nil, err
			}

			return next(auth.WithIdentity(ctx, id), method, req)
		}
	}
}

// localIdentityMiddleware acts as a fixed local user, for stdio transport.
func localIdentityMiddleware(uid string) sdkmcp.Middleware {
	id := auth.Identity{UID: uid}
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return next(auth.WithIdentity(ctx, id), method, req)
		}
	}
}
