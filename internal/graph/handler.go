package graph

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/rpggio/busybee/internal/transport"
)

// Handler serves GraphQL requests over HTTP.
type Handler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// NewHandler builds the schema around r and returns an HTTP handler for it.
func NewHandler(r *Resolver, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema, logger: logger}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := transport.ParseRequest(r.Body)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, transport.CodeParseFailed, err.Error())
		return
	}

	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	h.logger.Debug("graphql",
		"operation", req.OperationName,
		"errors", len(result.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	resp := transport.Response{Data: result.Data}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, transport.ErrorObject{
			Message:    e.Message,
			Path:       e.Path,
			Extensions: e.Extensions,
		})
	}
	transport.WriteResponse(w, resp)
}
