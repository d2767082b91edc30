// Package yamlutil wraps YAML parsing to isolate the external dependency.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

var (
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeStrict decodes data into v, rejecting unknown fields and inputs
// larger than maxSize bytes. Empty or comment-only input leaves v untouched.
func DecodeStrict(data []byte, v any, maxSize int) error {
	if v == nil {
		return ErrNilDestination
	}
	if len(data) > maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), maxSize)
	}
	if isBlank(data) {
		return nil
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// isBlank reports whether data holds only whitespace and comments.
func isBlank(data []byte) bool {
	inComment := false
	for _, c := range data {
		switch {
		case c == '\n':
			inComment = false
		case inComment, c == ' ', c == '\t', c == '\r':
		case c == '#':
			inComment = true
		default:
			return false
		}
	}
	return true
}
