package protect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected []string
	}{
		{
			name:     "builtin only",
			names:    nil,
			expected: []string{"noformat"},
		},
		{
			name:     "caller names come first",
			names:    []string{"code", "raw"},
			expected: []string{"code", "raw", "noformat"},
		},
		{
			name:     "duplicates dropped in first-seen order",
			names:    []string{"raw", "noformat", "raw", "code"},
			expected: []string{"raw", "noformat", "code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := NewRegistry("noformat", tt.names...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reg.Names())
			assert.Contains(t, reg.Names(), "noformat")
		})
	}
}

func TestNewRegistry_InvalidNames(t *testing.T) {
	for _, name := range []string{"", "a b", "[x", "x]", "a/b", "tab\t"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewRegistry("noformat", name)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.ErrorIs(t, ValidateName(name), ErrInvalidName)
		})
	}
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	reg, err := NewRegistry("noformat", "raw")
	require.NoError(t, err)

	names := reg.Names()
	names[0] = "changed"

	assert.Equal(t, []string{"raw", "noformat"}, reg.Names())
	assert.NotContains(t, reg.Names(), "changed")
}
