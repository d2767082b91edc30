package autop

import (
	"errors"

	"github.com/alnah/go-autop/internal/protect"
)

// Sentinel errors for library operations.
var (
	// ErrInvalidShortcode reports a shortcode name that is empty or holds
	// whitespace, brackets or slashes.
	ErrInvalidShortcode = protect.ErrInvalidName

	// Hook registration errors.
	ErrEmptyFilterName = errors.New("filter name cannot be empty")
	ErrNilFilter       = errors.New("filter cannot be nil")
	ErrNilShortcode    = errors.New("shortcode handler cannot be nil")
	ErrDuplicateFilter = errors.New("filter already registered")
	ErrUnknownHook     = errors.New("unknown hook")
)
