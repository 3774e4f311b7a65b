package application

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

func TestErrorKind(t *testing.T) {
	t.Parallel()

	vErr := &ValidationError{}
	vErr.add("name", "name is required")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "activity not found", err: fmt.Errorf("%w: x", ErrActivityNotFound), want: "activity_not_found"},
		{name: "not found", err: ErrNotFound, want: "not_found"},
		{name: "conflict", err: fmt.Errorf("wrapped: %w", ErrConflictDetected), want: "conflict_detected"},
		{name: "no op", err: ErrNoOp, want: "no_op"},
		{name: "malformed", err: ErrMalformedCommand, want: "malformed_command"},
		{name: "bad time", err: fmt.Errorf("%w: %q", timeutil.ErrInvalidFormat, "9am"), want: "invalid_time_format"},
		{name: "validation", err: vErr, want: "validation"},
		{name: "unknown", err: errors.New("boom"), want: "unexpected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorKind(tc.err); got != tc.want {
				t.Fatalf("ErrorKind() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	vErr := &ValidationError{}
	if vErr.HasErrors() {
		t.Fatal("empty error reports HasErrors")
	}
	vErr.add("end_time", "invalid time")
	vErr.add("name", "name is required")
	if !vErr.HasErrors() {
		t.Fatal("HasErrors is false after add")
	}

	want := "validation failed: end_time: invalid time; name: name is required"
	if got := vErr.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
