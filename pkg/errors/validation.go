package errors

import (
	"strings"
	"unicode"
)

const maxNameLength = 256

// ValidateLocationName checks a location name from a map file or the command
// line. Names are single whitespace-free tokens, since the map format
// separates fields by whitespace.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 256 characters
//   - No whitespace or control characters
func ValidateLocationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "location name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "location name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "location name contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "location name cannot contain whitespace: %q", name)
		}
	}

	return nil
}

// ValidateStops checks the stop list of a trip: at least two stops, each a
// valid location name.
func ValidateStops(stops []string) error {
	if len(stops) < 2 {
		return New(ErrCodeInvalidInput, "must have at least two locations for a trip")
	}
	for _, s := range stops {
		if err := ValidateLocationName(s); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePath validates a map file path given on the command line or in the
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
