package autop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHooks_DefaultFilter(t *testing.T) {
	h := NewHooks()

	assert.Equal(t, []string{DefaultFilterName}, h.Filters(HookContent))
	assert.Equal(t, []string{DefaultFilterName}, h.Filters(HookExcerpt))

	// The default filter knows nothing about protected regions.
	got := h.Apply(HookContent, "[noformat]a\n\nb[/noformat]")
	assert.Equal(t, "<p>[noformat]a</p>\n<p>b[/noformat]</p>\n", got)
}

func TestFormatter_Install(t *testing.T) {
	h := NewHooks()
	f := newTestFormatter(t)

	f.Install(h)

	assert.Equal(t, []string{FilterName}, h.Filters(HookContent))
	assert.Equal(t, []string{FilterName}, h.Filters(HookExcerpt))

	input := "[noformat]a\n\nb[/noformat]"
	assert.Equal(t, "<p>[noformat]a\n\nb[/noformat]</p>\n", h.Apply(HookContent, input))
	assert.Equal(t, "<p>[noformat]a\n\nb[/noformat]</p>\n", h.Apply(HookExcerpt, input))

	handler, ok := h.Shortcode(NoFormatShortcode)
	require.True(t, ok)
	assert.Equal(t, "<div>raw</div>", handler(nil, "<div>raw</div>"))
}

func TestFormatter_InstallTwice(t *testing.T) {
	h := NewHooks()
	f := newTestFormatter(t)

	f.Install(h)
	f.Install(h)

	assert.Equal(t, []string{FilterName}, h.Filters(HookContent))
}

func TestHooks_AddFilter(t *testing.T) {
	h := NewHooks()
	upper := func(s string) string { return strings.ToUpper(s) }

	require.NoError(t, h.AddFilter(HookExcerpt, "upper", upper))
	assert.Equal(t, []string{DefaultFilterName, "upper"}, h.Filters(HookExcerpt))
	assert.Equal(t, "<P>HI</P>\n", h.Apply(HookExcerpt, "hi"))

	tests := []struct {
		name    string
		hook    Hook
		filter  string
		fn      Filter
		wantErr error
	}{
		{"empty name", HookContent, "", upper, ErrEmptyFilterName},
		{"nil filter", HookContent, "x", nil, ErrNilFilter},
		{"duplicate", HookExcerpt, "upper", upper, ErrDuplicateFilter},
		{"unknown hook", Hook("title"), "x", upper, ErrUnknownHook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.AddFilter(tt.hook, tt.filter, tt.fn)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHooks_RemoveFilter(t *testing.T) {
	h := NewHooks()
	require.NoError(t, h.AddFilter(HookContent, "a", func(s string) string { return s + "a" }))
	require.NoError(t, h.AddFilter(HookContent, "b", func(s string) string { return s + "b" }))

	assert.True(t, h.RemoveFilter(HookContent, DefaultFilterName))
	assert.False(t, h.RemoveFilter(HookContent, DefaultFilterName))
	assert.Equal(t, []string{"a", "b"}, h.Filters(HookContent))
	assert.Equal(t, "xab", h.Apply(HookContent, "x"))

	assert.True(t, h.RemoveFilter(HookContent, "a"))
	assert.Equal(t, "xb", h.Apply(HookContent, "x"))
}

func TestHooks_ApplyUnknownHook(t *testing.T) {
	h := NewHooks()
	assert.Equal(t, "unchanged", h.Apply(Hook("title"), "unchanged"))
}

func TestHooks_AddShortcode(t *testing.T) {
	h := NewHooks()

	assert.ErrorIs(t, h.AddShortcode("", NoFormat), ErrInvalidShortcode)
	assert.ErrorIs(t, h.AddShortcode("x", nil), ErrNilShortcode)

	_, ok := h.Shortcode("x")
	assert.False(t, ok)
}

func TestNoFormat(t *testing.T) {
	atts := map[string]string{"class": "ignored"}
	assert.Equal(t, "a\n\n<b>b</b>", NoFormat(atts, "a\n\n<b>b</b>"))
	assert.Equal(t, "", NoFormat(nil, ""))
}
