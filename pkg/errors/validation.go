package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidateID validates an opaque item or container identifier.
// The kind names what is being validated ("item", "container") and is used in
// the message only.
//
// The validation rules are intentionally minimal since identifiers are opaque:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 256 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "%s id cannot be empty", kind)
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidID, "%s id too long (max 256 characters)", kind)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "%s id contains invalid control characters", kind)
		}
	}

	return nil
}

// boardNameRegex matches names usable as file stems and redis keys.
var boardNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateBoardName validates a board name for safety.
// Board names become file names and redis keys, so they must be a simple
// token without path components.
func ValidateBoardName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "board name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "board name too long (max 128 characters)")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "board name cannot contain path traversal sequences (..)")
	}

	if !boardNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid board name: %q", name)
	}

	return nil
}

// CleanPath checks a file path given on the command line and returns it
// cleaned with [filepath.Clean]. Absolute paths and parent references are
// allowed; the file's existence is left to the reader.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func CleanPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return "", New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return "", New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return filepath.Clean(path), nil
}
