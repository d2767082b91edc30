package protect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is returned for shortcode names that cannot be matched as
// a bracketed tag.
var ErrInvalidName = errors.New("invalid shortcode name")

// Registry is an ordered, duplicate-free list of shortcode names whose
// bodies are protected. It cannot be changed after construction.
type Registry struct {
	names []string
}

// NewRegistry returns a registry holding names followed by builtin, in
// first-seen order with duplicates dropped.
func NewRegistry(builtin string, names ...string) (*Registry, error) {
	all := append(append([]string(nil), names...), builtin)

	seen := make(map[string]bool, len(all))
	reg := &Registry{names: make([]string, 0, len(all))}
	for _, name := range all {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		reg.names = append(reg.names, name)
	}
	return reg, nil
}

// Names returns a copy of the registered names.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// ValidateName returns ErrInvalidName for names that are empty or hold
// whitespace, brackets or slashes.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, "[]/ \t\r\n\f\v") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
