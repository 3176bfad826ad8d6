package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConflict, "test message: %s", "value")

	if err.Code != ErrCodeConflict {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConflict)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "CONFLICT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidScene, cause, "failed to load")

	if err.Code != ErrCodeInvalidScene {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidScene)
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
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeConflict, "test"),
			code:     ErrCodeConflict,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeConflict, "test"),
			code:     ErrCodeInvalidConfig,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeConflict,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeInvalidScene, errors.New("cause"), "outer"),
			code:     ErrCodeInvalidScene,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "structured error",
			err:  New(ErrCodeFileNotFound, "missing"),
			want: ErrCodeFileNotFound,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	structured := New(ErrCodeInvalidConfig, "bad direction")
	if got := UserMessage(structured); got != "bad direction" {
		t.Errorf("UserMessage() = %v, want %v", got, "bad direction")
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain error")
	}
}

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{name: "valid", input: "sidebar", wantCode: ""},
		{name: "valid with spaces", input: "main panel", wantCode: ""},
		{name: "empty", input: "", wantCode: ErrCodeInvalidName},
		{name: "control characters", input: "bad\x00name", wantCode: ErrCodeInvalidName},
		{name: "reserved prefix", input: "listflow.marker.axis-start", wantCode: ErrCodeInvalidName},
		{name: "too long", input: string(make([]byte, 300)), wantCode: ErrCodeInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateNodeName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateNodeName(%q) = %v, want code %v", tt.input, err, tt.wantCode)
			}
		})
	}
}
