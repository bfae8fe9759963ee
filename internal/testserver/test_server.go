// Package testserver runs the full HTTP stack against an in-memory database.
package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/domain/user"
	"github.com/rpggio/busybee/internal/graph"
	"github.com/rpggio/busybee/internal/mcp"
	"github.com/rpggio/busybee/internal/sqlstore"
	"github.com/rpggio/busybee/internal/transport"
)

const secret = "test-secret"

type TestServer struct {
	Server *httptest.Server
	DB     *sqlstore.DB
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlstore.New(sqlstore.DriverSQLite, dsn, sqlstore.Options{})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	userSvc := user.NewService(sqlstore.NewUserRepository(db), nil)
	projectSvc := project.NewService(sqlstore.NewProjectRepository(db), userSvc, nil)
	taskSvc := task.NewService(sqlstore.NewTaskRepository(db), userSvc, nil)

	verifier, err := auth.NewJWTVerifier(secret)
	require.NoError(t, err)

	gql, err := graph.NewHandler(graph.NewResolver(projectSvc, taskSvc, nil), nil)
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{
		Services:      mcp.Services{Projects: projectSvc, Tasks: taskSvc},
		Verifier:      verifier,
		TransportMode: mcp.ModeHTTP,
	})

	router := transport.NewServer(transport.Handlers{
		GraphQL: gql,
		MCP:     mcp.NewHTTPHandler(mcpServer),
	}, transport.AuthMiddleware(verifier, nil))
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{Server: server, DB: db}
}

// GraphQLURL is the GraphQL endpoint.
func (ts *TestServer) GraphQLURL() string {
	return ts.Server.URL + "/graphql"
}

// MCPURL is the streamable MCP endpoint.
func (ts *TestServer) MCPURL() string {
	return ts.Server.URL + "/mcp"
}

// Token mints a credential for uid accepted by the server.
func (ts *TestServer) Token(t *testing.T, uid, email string) string {
	t.Helper()
	id := auth.Identity{UID: uid}
	if email != "" {
		id.Email = &email
	}
	token, err := auth.SignDevToken(secret, id, time.Hour)
	require.NoError(t, err)
	return token
}
