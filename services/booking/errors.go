package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSessionNotFound is returned when a session id resolves to nothing,
// either because it never existed or because its TTL elapsed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError reports malformed criteria or attendee data. It is
// always resolved locally and never reaches the network.
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
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation rejected: " + strings.Join(parts, "; ")
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// FetchError wraps an inventory search failure. The session stays where
// it was and the search may be retried.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetchError: %s: %v", e.Message, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// CommitError wraps a create-order failure. Captured data is retained and
// the commit may be retried from the confirmation step.
type CommitError struct {
	Message string
	Cause   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commitError: %s: %v", e.Message, e.Cause)
}

func (e *CommitError) Unwrap() error { return e.Cause }

// FlowError reports an operation that is illegal in the session's current
// step, e.g. confirming before attendee capture.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newFlowError(code, format string, args ...any) error {
	return &FlowError{Code: code, Message: fmt.Sprintf(format, args...)}
}
