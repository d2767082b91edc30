package protect

import "strings"

// Extract replaces every region of fam in text with a placeholder recorded
// in set, and returns the rewritten text.
//
// Each close marker is paired with the nearest open marker before it that
// belongs to the same stretch of text. A close marker with no opener is
// kept verbatim. Text is returned untouched when the open marker does not
// occur at all.
func Extract(text string, fam Family, set *Set) string {
	if !strings.Contains(text, fam.Open) {
		return text
	}

	segments := strings.Split(text, fam.Close)
	last := len(segments) - 1

	var b strings.Builder
	b.Grow(len(text))
	for _, seg := range segments[:last] {
		start := strings.LastIndex(seg, fam.Open)
		if start < 0 {
			b.WriteString(seg)
			b.WriteString(fam.Close)
			continue
		}
		p := set.add(fam, seg[start:]+fam.Close)
		b.WriteString(seg[:start])
		b.WriteString(p.String())
	}
	b.WriteString(segments[last])
	return b.String()
}

// Protect extracts <pre> blocks, then the shortcodes of reg in registration
// order. A nil reg protects <pre> blocks only.
func Protect(text string, reg *Registry) (string, *Set) {
	set := &Set{}
	text = Extract(text, PreFamily(), set)
	if reg == nil {
		return text, set
	}
	for _, name := range reg.names {
		text = Extract(text, ShortcodeFamily(name), set)
	}
	return text, set
}
