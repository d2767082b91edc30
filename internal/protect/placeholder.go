package protect

import (
	"fmt"
	"strings"
)

// Kind identifies a region family.
type Kind int

const (
	KindPre Kind = iota
	KindShortcode
)

func (k Kind) String() string {
	switch k {
	case KindPre:
		return "pre"
	case KindShortcode:
		return "shortcode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Family is the delimiter pair of one kind of protected region.
type Family struct {
	Kind  Kind
	Name  string
	Open  string
	Close string
}

// PreFamily matches <pre ...> ... </pre>.
func PreFamily() Family {
	return Family{Kind: KindPre, Name: "pre", Open: "<pre", Close: "</pre>"}
}

// ShortcodeFamily matches [name ...] ... [/name].
func ShortcodeFamily(name string) Family {
	return Family{
		Kind:  KindShortcode,
		Name:  name,
		Open:  "[" + name,
		Close: "[/" + name + "]",
	}
}

// Placeholder names one protected region within a single transform.
// Index is zero-based and counts per family.
type Placeholder struct {
	Kind  Kind
	Name  string
	Index int
}

// String renders the placeholder as an empty element of its own family, so
// the paragraph engine treats it like any other empty <pre> or shortcode.
func (p Placeholder) String() string {
	if p.Kind == KindPre {
		return fmt.Sprintf("<pre autop-pre-tag-%d></pre>", p.Index)
	}
	return fmt.Sprintf("[%s autop-%s-tag-%d][/%s]", p.Name, p.Name, p.Index, p.Name)
}

// Region pairs a placeholder with the text it replaced.
type Region struct {
	Placeholder Placeholder
	Original    string
}

// Set records the regions extracted during one transform. The zero value
// is ready to use. A Set is not safe for concurrent use.
type Set struct {
	regions []Region
	counts  map[Family]int
}

// add records original under the next placeholder of fam.
func (s *Set) add(fam Family, original string) Placeholder {
	if s.counts == nil {
		s.counts = make(map[Family]int)
	}
	p := Placeholder{Kind: fam.Kind, Name: fam.Name, Index: s.counts[fam]}
	s.counts[fam]++
	s.regions = append(s.regions, Region{Placeholder: p, Original: original})
	return p
}

// Restore replaces every placeholder in text with its original, <pre>
// regions first, then shortcodes. A region extracted from inside another
// region only reappears once the outer one is restored, so the two bulk
// replacements repeat until the text stops changing.
func (s *Set) Restore(text string) string {
	if len(s.regions) == 0 {
		return text
	}

	pre := s.replacer(KindPre)
	shortcodes := s.replacer(KindShortcode)
	for i := 0; i < len(s.regions)+1; i++ {
		before := text
		text = pre.Replace(text)
		text = shortcodes.Replace(text)
		if text == before {
			break
		}
	}
	return text
}

func (s *Set) replacer(kind Kind) *strings.Replacer {
	var pairs []string
	for _, r := range s.regions {
		if r.Placeholder.Kind == kind {
			pairs = append(pairs, r.Placeholder.String(), r.Original)
		}
	}
	return strings.NewReplacer(pairs...)
}
