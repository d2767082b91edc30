package autop

import (
	"fmt"
	"strings"

	"github.com/alnah/go-autop/internal/paragraph"
	"github.com/alnah/go-autop/internal/protect"
)

// NoFormatShortcode is always protected, whatever WithShortcodes adds.
const NoFormatShortcode = "noformat"

// blankChars are the characters ignored when deciding input is blank.
const blankChars = " \t\n\r\x00\x0B"

// Formatter paragraphs text while protecting <pre> blocks and registered
// shortcodes. Create with NewFormatter; the zero value is not usable.
type Formatter struct {
	registry   *protect.Registry
	lineBreaks bool
}

// formatterConfig collects options before the registry is built.
type formatterConfig struct {
	shortcodes []string
	lineBreaks bool
}

// Option configures a Formatter.
type Option func(*formatterConfig)

// WithShortcodes protects the bodies of the named shortcodes in addition to
// [noformat]. Repeated calls accumulate.
func WithShortcodes(names ...string) Option {
	return func(c *formatterConfig) {
		c.shortcodes = append(c.shortcodes, names...)
	}
}

// WithLineBreaks sets whether Content and Excerpt turn single newlines into
// <br /> markers. Default: true.
func WithLineBreaks(enabled bool) Option {
	return func(c *formatterConfig) {
		c.lineBreaks = enabled
	}
}

// NewFormatter builds an immutable Formatter.
// Returns ErrInvalidShortcode if a shortcode name cannot be matched.
func NewFormatter(opts ...Option) (*Formatter, error) {
	cfg := formatterConfig{lineBreaks: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg, err := protect.NewRegistry(NoFormatShortcode, cfg.shortcodes...)
	if err != nil {
		return nil, fmt.Errorf("building shortcode registry: %w", err)
	}

	return &Formatter{registry: reg, lineBreaks: cfg.lineBreaks}, nil
}

// Autop paragraphs text. When br is true, single newlines inside paragraphs
// become <br /> markers. Blank input yields "".
func (f *Formatter) Autop(text string, br bool) string {
	if strings.Trim(text, blankChars) == "" {
		return ""
	}

	text, regions := protect.Protect(text, f.registry)
	text = paragraph.Format(text, br)
	return regions.Restore(text)
}

// Content formats a document body.
func (f *Formatter) Content(text string) string {
	return f.Autop(text, f.lineBreaks)
}

// Excerpt formats a document excerpt.
func (f *Formatter) Excerpt(text string) string {
	return f.Autop(text, f.lineBreaks)
}

// Shortcodes returns the protected shortcode names in registration order.
func (f *Formatter) Shortcodes() []string {
	return f.registry.Names()
}

// LineBreaks reports whether Content and Excerpt convert line breaks.
func (f *Formatter) LineBreaks() bool {
	return f.lineBreaks
}
