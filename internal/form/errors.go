// Package form validates task and project input before it is sent to the API.
package form

import (
	"fmt"
	"sort"
	"strings"
)

// Field names used as ValidationError keys.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldDueDate     = "dueDate"
	FieldProjectID   = "projectId"
	FieldName        = "name"
	FieldColor       = "color"
)

// MsgRequired is reported for empty required fields.
const MsgRequired = "This field is required"

func maxLengthMsg(n int) string {
	return fmt.Sprintf("Maximum length is %d", n)
}

// ValidationError collects per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Field returns the message for a field, or "" if it is valid.
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

type collector map[string]string

func (c collector) add(field, msg string) {
	if _, ok := c[field]; !ok {
		c[field] = msg
	}
}

func (c collector) err() error {
	if len(c) == 0 {
		return nil
	}
	return &ValidationError{Fields: c}
}
