package app

import (
	"errors"
	"os"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "op only",
			err:  NewOperationError("save", "", nil),
			want: "save",
		},
		{
			name: "op and target",
			err:  NewOperationError("save", "a.txt", nil),
			want: "save a.txt",
		},
		{
			name: "with wrapped error",
			err:  NewOperationError("open", "a.txt", os.ErrPermission),
			want: "open a.txt: permission denied",
		},
		{
			name: "with context",
			err:  NewOperationError("save", "a.txt", nil).WithContext("readonly fs"),
			want: "save a.txt (readonly fs)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := NewOperationError("save", "a.txt", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is failed to find wrapped error")
	}
	if errors.Unwrap(err) != inner {
		t.Error("Unwrap did not return wrapped error")
	}
}

func TestOperationErrorNilReceiver(t *testing.T) {
	var err *OperationError
	if err.Error() != "" {
		t.Error("nil receiver Error() not empty")
	}
	if err.WithContext("x") != nil {
		t.Error("nil receiver WithContext() not nil")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil should be nil")
	}

	inner := errors.New("boom")
	wrapped := WrapError(inner, "during %s", "save")
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error lost its cause")
	}
	if wrapped.Error() != "during save: boom" {
		t.Errorf("message = %q", wrapped.Error())
	}
}
