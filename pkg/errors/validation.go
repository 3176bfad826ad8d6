package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeName validates a scene node name for safety and correctness.
// Names appear in logs, CLI tables, and TOML scene files, so the rules
// are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No reserved "listflow." prefix (claimed by engine-owned markers)
//   - Maximum length of 256 characters
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "node name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "node name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "node name contains invalid control characters")
		}
	}

	if strings.HasPrefix(name, "listflow.") {
		return New(ErrCodeInvalidName, "node name prefix %q is reserved", "listflow.")
	}

	return nil
}
