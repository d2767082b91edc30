package paragraph

// Pass is one named rewrite step of the engine.
type Pass struct {
	Name  string
	Apply func(string) string
}

// layoutPasses run before line-break conversion.
var layoutPasses = []Pass{
	{"pad-trailing-newline", padTrailingNewline},
	{"collapse-double-breaks", collapseDoubleBreaks},
	{"break-before-block-open", breakBeforeBlockOpen},
	{"break-after-block-close", breakAfterBlockClose},
	{"normalize-newlines", normalizeNewlines},
	{"protect-tag-newlines", protectTagNewlines},
	{"collapse-option-space", collapseOptionSpace},
	{"collapse-object-space", collapseObjectSpace},
	{"collapse-media-space", collapseMediaSpace},
	{"collapse-blank-lines", collapseBlankLines},
	{"wrap-paragraphs", wrapParagraphs},
	{"remove-empty-paragraphs", removeEmptyParagraphs},
	{"close-paragraph-in-block", closeParagraphInBlock},
	{"unwrap-block-tags", unwrapBlockTags},
	{"unwrap-list-items", unwrapListItems},
	{"nest-blockquote-paragraphs", nestBlockquoteParagraphs},
	{"strip-paragraphs-around-blocks", stripParagraphsAroundBlocks},
}

var lineBreakPass = Pass{"convert-line-breaks", convertLineBreaks}

// cleanupPasses run after line-break conversion.
var cleanupPasses = []Pass{
	{"trim-final-paragraph-break", trimFinalParagraphBreak},
	{"drop-break-after-block", dropBreakAfterBlock},
	{"drop-break-before-closer", dropBreakBeforeCloser},
	{"restore-tag-newlines", restoreTagNewlines},
}

// Passes returns the ordered pass list. br enables line-break conversion.
func Passes(br bool) []Pass {
	passes := make([]Pass, 0, len(layoutPasses)+1+len(cleanupPasses))
	passes = append(passes, layoutPasses...)
	if br {
		passes = append(passes, lineBreakPass)
	}
	return append(passes, cleanupPasses...)
}

// Format paragraphs text. When br is true, newlines left inside paragraphs
// become <br /> markers.
//
// Format does not treat empty input specially; callers wanting "" for
// blank input check for it first.
func Format(text string, br bool) string {
	for _, p := range Passes(br) {
		text = p.Apply(text)
	}
	return text
}
