package autop

import (
	"fmt"
	"sync"

	"github.com/alnah/go-autop/internal/paragraph"
)

// Hook names a filter chain.
type Hook string

// Hooks run on rendered documents.
const (
	HookContent Hook = "content"
	HookExcerpt Hook = "excerpt"
)

// Filter names.
const (
	// DefaultFilterName is the unconditional paragraphing filter every
	// chain starts with.
	DefaultFilterName = "autop"

	// FilterName is the filter Formatter.Install registers.
	FilterName = "shortcode-autop"
)

// Filter rewrites text.
type Filter func(text string) string

// ShortcodeHandler renders a shortcode from its attributes and enclosed
// content.
type ShortcodeHandler func(atts map[string]string, content string) string

type namedFilter struct {
	name string
	fn   Filter
}

// Hooks holds ordered filter chains and shortcode handlers.
// Safe for concurrent use.
type Hooks struct {
	mu         sync.RWMutex
	filters    map[Hook][]namedFilter
	shortcodes map[string]ShortcodeHandler
}

// NewHooks returns hooks for HookContent and HookExcerpt, each holding the
// default paragraphing filter (no protected regions, line breaks on).
func NewHooks() *Hooks {
	h := &Hooks{
		filters:    make(map[Hook][]namedFilter),
		shortcodes: make(map[string]ShortcodeHandler),
	}
	for _, hook := range []Hook{HookContent, HookExcerpt} {
		h.filters[hook] = []namedFilter{{name: DefaultFilterName, fn: defaultAutop}}
	}
	return h
}

// defaultAutop paragraphs everything, <pre> blocks and shortcodes included.
func defaultAutop(text string) string {
	return paragraph.Format(text, true)
}

// AddFilter appends fn to hook's chain under name.
func (h *Hooks) AddFilter(hook Hook, name string, fn Filter) error {
	if name == "" {
		return ErrEmptyFilterName
	}
	if fn == nil {
		return ErrNilFilter
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	chain, ok := h.filters[hook]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHook, hook)
	}
	for _, f := range chain {
		if f.name == name {
			return fmt.Errorf("%w: %s on %s", ErrDuplicateFilter, name, hook)
		}
	}
	h.filters[hook] = append(chain, namedFilter{name: name, fn: fn})
	return nil
}

// RemoveFilter drops the filter called name from hook's chain and reports
// whether it was present.
func (h *Hooks) RemoveFilter(hook Hook, name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	chain := h.filters[hook]
	for i, f := range chain {
		if f.name == name {
			h.filters[hook] = append(chain[:i:i], chain[i+1:]...)
			return true
		}
	}
	return false
}

// Filters returns the filter names of hook in run order.
func (h *Hooks) Filters(hook Hook) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	chain := h.filters[hook]
	names := make([]string, len(chain))
	for i, f := range chain {
		names[i] = f.name
	}
	return names
}

// Apply runs hook's filters over text in registration order. Unknown hooks
// return text unchanged.
func (h *Hooks) Apply(hook Hook, text string) string {
	h.mu.RLock()
	chain := append([]namedFilter(nil), h.filters[hook]...)
	h.mu.RUnlock()

	for _, f := range chain {
		text = f.fn(text)
	}
	return text
}

// AddShortcode registers handler under name, replacing any previous one.
func (h *Hooks) AddShortcode(name string, handler ShortcodeHandler) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidShortcode)
	}
	if handler == nil {
		return ErrNilShortcode
	}

	h.mu.Lock()
	h.shortcodes[name] = handler
	h.mu.Unlock()
	return nil
}

// Shortcode returns the handler registered under name.
func (h *Hooks) Shortcode(name string) (ShortcodeHandler, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	handler, ok := h.shortcodes[name]
	return handler, ok
}

// Install replaces the default paragraphing filter on HookContent and
// HookExcerpt with f, and registers NoFormat under [noformat].
// Installing twice is a no-op.
func (f *Formatter) Install(h *Hooks) {
	h.RemoveFilter(HookContent, DefaultFilterName)
	h.RemoveFilter(HookExcerpt, DefaultFilterName)

	// Both hooks exist and the filters are non-nil, so the only possible
	// error is a duplicate from an earlier Install.
	_ = h.AddFilter(HookContent, FilterName, f.Content)
	_ = h.AddFilter(HookExcerpt, FilterName, f.Excerpt)
	_ = h.AddShortcode(NoFormatShortcode, NoFormat)
}

// NoFormat is the [noformat] handler. It returns content unchanged: the
// shortcode only marks a region to protect and adds no markup of its own.
func NoFormat(_ map[string]string, content string) string {
	return content
}
