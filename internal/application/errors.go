package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrActivityNotFound is returned when a name-matched edit target
	// matches nothing in the day's schedule.
	ErrActivityNotFound = errors.New("application: activity not found")
	// ErrConflictDetected is returned when an edit would overlap a
	// hard-constrained block.
	ErrConflictDetected = errors.New("application: conflict with a fixed block")
	// ErrNoOp is returned when the requested edit would change nothing.
	ErrNoOp = errors.New("application: nothing to do")
	// ErrMalformedCommand is returned when an edit command is missing a
	// field its action requires.
	ErrMalformedCommand = errors.New("application: malformed command")
)

// ValidationError captures field level validation issues that callers can
// surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for field := range v.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v.FieldErrors[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// ErrorKind maps sentinel and validation errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflictDetected):
		return "conflict_detected"
	case errors.Is(err, ErrNoOp):
		return "no_op"
	case errors.Is(err, ErrMalformedCommand):
		return "malformed_command"
	case errors.Is(err, timeutil.ErrInvalidFormat):
		return "invalid_time_format"
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return "validation"
	}

	return "unexpected"
}
