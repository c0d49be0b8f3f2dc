package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingField, "missing field: %s", "labels")

	if err.Code != ErrCodeMissingField {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissingField)
	}

	if err.Message != "missing field: labels" {
		t.Errorf("Message = %v, want %v", err.Message, "missing field: labels")
	}

	expected := "MISSING_FIELD: missing field: labels"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "get artifact types")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidPodName, "pod name too short")

	if !Is(err, ErrCodeInvalidPodName) {
		t.Error("Is(err, ErrCodeInvalidPodName) = false, want true")
	}

	if Is(err, ErrCodeNetwork) {
		t.Error("Is(err, ErrCodeNetwork) = true, want false")
	}

	// Non-*Error errors never match a code.
	plain := errors.New("plain error")
	if Is(plain, ErrCodeInvalidPodName) {
		t.Error("Is(plain, code) = true, want false")
	}

	// Wrapped errors are unwrapped before matching.
	wrapped := Wrap(ErrCodeNetwork, err, "stage failed")
	if !Is(wrapped, ErrCodeNetwork) {
		t.Error("Is(wrapped, ErrCodeNetwork) = false, want true")
	}
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodeDimensionMismatch, "got 3 rows, want 4")
	if got := GetCode(err); got != ErrCodeDimensionMismatch {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeDimensionMismatch)
	}

	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeMissingColumn, "missing tpr column")
	if got := UserMessage(err); got != "missing tpr column" {
		t.Errorf("UserMessage() = %v, want %v", got, "missing tpr column")
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %v, want %v", got, "plain error")
	}
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing field", New(ErrCodeMissingField, "x"), true},
		{"dimension mismatch", New(ErrCodeDimensionMismatch, "x"), true},
		{"not found", New(ErrCodeNotFound, "x"), true},
		{"unsupported", New(ErrCodeUnsupported, "x"), true},
		{"network", New(ErrCodeNetwork, "x"), false},
		{"invalid pod name", New(ErrCodeInvalidPodName, "x"), false},
		{"render failed", New(ErrCodeRenderFailed, "x"), false},
		{"plain error", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recoverable(tt.err); got != tt.want {
				t.Errorf("Recoverable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidMetadata,
		ErrCodeMissingField,
		ErrCodeMissingColumn,
		ErrCodeInvalidFormat,
		ErrCodeInvalidSource,
		ErrCodeDimensionMismatch,
		ErrCodeUnknownLabel,
		ErrCodeInvalidPodName,
		ErrCodeNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeRenderFailed,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
