package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// GraphQL error codes reported in extensions.code.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeInternal        = "INTERNAL"
	CodeParseFailed     = "GRAPHQL_PARSE_FAILED"
)

const maxRequestBytes = 1 << 20

// Request represents a GraphQL-over-HTTP request.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// Response represents a GraphQL-over-HTTP response.
type Response struct {
	Data   any           `json:"data,omitempty"`
	Errors []ErrorObject `json:"errors,omitempty"`
}

// ErrorObject represents a GraphQL error.
type ErrorObject struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code, if any.
func (e ErrorObject) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// ParseRequest parses and validates a GraphQL request payload.
func ParseRequest(body io.Reader) (Request, error) {
	var req Request
	dec := json.NewDecoder(io.LimitReader(body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("parse error: %w", err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return Request{}, errors.New("invalid request: query is required")
	}
	return req, nil
}

// WriteResponse writes a GraphQL response with status 200.
func WriteResponse(w http.ResponseWriter, resp Response) {
	writeJSON(w, http.StatusOK, resp)
}

// WriteError writes a single request-level GraphQL error.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Response{
		Errors: []ErrorObject{{
			Message:    message,
			Extensions: map[string]any{"code": code},
		}},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
