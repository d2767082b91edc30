package paragraph

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// BlockTags lists the elements treated as layout boundaries.
var BlockTags = []atom.Atom{
	atom.Table, atom.Thead, atom.Tfoot, atom.Caption, atom.Col, atom.Colgroup,
	atom.Tbody, atom.Tr, atom.Td, atom.Th,
	atom.Div, atom.Dl, atom.Dd, atom.Dt, atom.Ul, atom.Ol, atom.Li,
	atom.Pre, atom.Form, atom.Map, atom.Area, atom.Blockquote, atom.Address,
	atom.Math, atom.Style, atom.P,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
	atom.Hr, atom.Fieldset, atom.Legend,
	atom.Section, atom.Article, atom.Aside, atom.Hgroup, atom.Header, atom.Footer,
	atom.Nav, atom.Figure, atom.Figcaption, atom.Details, atom.Menu, atom.Summary,
}

// breakableTags are the closers a trailing <br /> is redundant against.
var breakableTags = []atom.Atom{
	atom.P, atom.Li, atom.Div, atom.Dl, atom.Dd, atom.Dt,
	atom.Th, atom.Pre, atom.Td, atom.Ul, atom.Ol,
}

// alternation renders tags as a non-capturing regex group.
func alternation(tags []atom.Atom) string {
	names := make([]string, len(tags))
	for i, a := range tags {
		names[i] = a.String()
	}
	return "(?:" + strings.Join(names, "|") + ")"
}
