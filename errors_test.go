package hpcbench

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBenchErrorFormat(t *testing.T) {
	err := NewAllocError("allocNodes", "256MiB requested", nil)

	msg := err.Error()
	for _, want := range []string{"Allocation", "allocNodes", "256MiB requested"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestBenchErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := NewIOError("Result.Save", "write failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find wrapped cause")
	}
	if !strings.Contains(err.Error(), "caused by") {
		t.Errorf("wrapped error message %q missing cause", err.Error())
	}
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		typ  ErrorType
		want string
	}{
		{ErrTypeConfig, "Config"},
		{ErrTypeAlloc, "Allocation"},
		{ErrTypeValidation, "Validation"},
		{ErrTypeIO, "IO"},
		{ErrorType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestValidationErrorCategory(t *testing.T) {
	err := NewValidationError("RunStreamSweep", "checksum mismatch")
	var be *BenchError
	if !errors.As(err, &be) {
		t.Fatalf("error type = %T", err)
	}
	if be.Type != ErrTypeValidation {
		t.Errorf("category = %v, want Validation", be.Type)
	}
}
