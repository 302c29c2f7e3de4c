package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// ValidateFilePath validates a scenario, document or output path given on
// the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
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

	return nil
}

// ValidateLength validates a length-like value (width, height, spacing,
// inset). It must be finite and not negative.
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidScenario, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidScenario, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}

// ValidateCount validates a non-negative count such as a number of items.
func ValidateCount(name string, n int) error {
	if n < 0 {
		return New(ErrCodeInvalidScenario, "%s cannot be negative (got %d)", name, n)
	}
	return nil
}

// ValidateMax validates a count against an upper bound.
func ValidateMax(name string, n, limit int) error {
	if n > limit {
		return New(ErrCodeInvalidScenario, "%s exceeds limit of %d (got %d)", name, limit, n)
	}
	return nil
}

// ValidateFormat checks format against the allowed output formats,
// case-insensitively.
func ValidateFormat(format string, allowed ...string) error {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, f) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}
