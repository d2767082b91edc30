package paragraph

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Placeholders that stand in for newlines while other passes run.
const (
	// TagNewline replaces a newline found inside a tag, comment or CDATA.
	TagNewline = " <!-- wpnl --> "

	// tagNewlineBare is what remains of TagNewline when a pass trimmed
	// the surrounding spaces.
	tagNewlineBare = "<!-- wpnl -->"

	// preservedNewline replaces newlines inside <script> and <style>
	// during line-break conversion.
	preservedNewline = "<AutopPreserveNewline />"
)

var (
	allBlocks       = alternation(BlockTags)
	breakableBlocks = alternation(breakableTags)
)

// Precompiled patterns, in pass order. Whitespace is spelled out as
// [\t\n\v\f\r ] because RE2's \s leaves out \v.
var (
	doubleBreak = regexp.MustCompile(`<br[\t\n\v\f\r ]*/?>[\t\n\v\f\r ]*<br[\t\n\v\f\r ]*/?>`)

	blockOpen  = regexp.MustCompile(`(<` + allBlocks + `[\t\n\v\f\r />])`)
	blockClose = regexp.MustCompile(`(</` + allBlocks + `>)`)

	crlfOrCR = regexp.MustCompile(`\r\n?`)

	spaceBeforeOption = regexp.MustCompile(`[\t\n\v\f\r ]*<option`)
	spaceAfterOption  = regexp.MustCompile(`</option>[\t\n\v\f\r ]*`)

	spaceAfterObject  = regexp.MustCompile(`(<object[^>]*>)[\t\n\v\f\r ]*`)
	spaceBeforeObject = regexp.MustCompile(`[\t\n\v\f\r ]*</object>`)
	spaceAroundParam  = regexp.MustCompile(`[\t\n\v\f\r ]*(</?(?:param|embed)[^>]*>)[\t\n\v\f\r ]*`)

	spaceAfterMedia   = regexp.MustCompile(`([<\[](?:audio|video)[^>\]]*[>\]])[\t\n\v\f\r ]*`)
	spaceBeforeMedia  = regexp.MustCompile(`[\t\n\v\f\r ]*([<\[]/(?:audio|video)[>\]])`)
	spaceAroundSource = regexp.MustCompile(`[\t\n\v\f\r ]*(<(?:source|track)[^>]*>)[\t\n\v\f\r ]*`)

	blankLines     = regexp.MustCompile(`\n\n+`)
	paragraphSplit = regexp.MustCompile(`\n[\t\n\v\f\r ]*\n`)

	emptyParagraph   = regexp.MustCompile(`<p>[\t\n\v\f\r ]*</p>`)
	unclosedInBlock  = regexp.MustCompile(`<p>([^<]+)</(div|address|form)>`)
	wrappedBlockTag  = regexp.MustCompile(`<p>[\t\n\v\f\r ]*(</?` + allBlocks + `[^>]*>)[\t\n\v\f\r ]*</p>`)
	wrappedListItem  = regexp.MustCompile(`<p>(<li.+?)</p>`)
	wrappedQuoteOpen = regexp.MustCompile(`(?i)<p><blockquote([^>]*)>`)
	openBeforeBlock  = regexp.MustCompile(`<p>[\t\n\v\f\r ]*(</?` + allBlocks + `[^>]*>)`)
	closeAfterBlock  = regexp.MustCompile(`(</?` + allBlocks + `[^>]*>)[\t\n\v\f\r ]*</p>`)

	finalParagraphBreak = regexp.MustCompile(`\n</p>(\n?)$`)
	breakAfterBlock     = regexp.MustCompile(`(</?` + allBlocks + `[^>]*>)[\t\n\v\f\r ]*<br />`)
	breakBeforeCloser   = regexp.MustCompile(`<br />([\t\n\v\f\r ]*</?` + breakableBlocks + `[^>]*>)`)

	// RE2 has neither backreferences nor lookbehind.
	scriptOrStyle     = regexp2.MustCompile(`<(script|style).*?</\1>`, regexp2.Singleline)
	unbrokenNewline   = regexp2.MustCompile(`(?<!<br />)[\t\n\v\f\r ]*\n`, regexp2.None)
	brSpellingReplace = strings.NewReplacer("<br>", "<br />", "<br/>", "<br />")
)

// padTrailingNewline appends a newline so every line ends with one.
func padTrailingNewline(text string) string {
	return text + "\n"
}

// collapseDoubleBreaks turns two consecutive <br> tags into a blank line.
func collapseDoubleBreaks(text string) string {
	return doubleBreak.ReplaceAllString(text, "\n\n")
}

// breakBeforeBlockOpen puts a newline in front of every block opening tag.
func breakBeforeBlockOpen(text string) string {
	return blockOpen.ReplaceAllString(text, "\n$1")
}

// breakAfterBlockClose puts a blank line after every block closing tag.
func breakAfterBlockClose(text string) string {
	return blockClose.ReplaceAllString(text, "$1\n\n")
}

// normalizeNewlines converts \r\n and \r to \n.
func normalizeNewlines(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// protectTagNewlines hides newlines inside tags, comments and CDATA
// sections behind TagNewline so they cannot split a paragraph.
// Text between tags is left alone.
func protectTagNewlines(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for {
		i := strings.IndexByte(text, '<')
		if i < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:i])

		n := markupLength(text[i:])
		b.WriteString(strings.ReplaceAll(text[i:i+n], "\n", TagNewline))
		text = text[i+n:]
	}
	return b.String()
}

// markupLength returns the length of the tag, comment or CDATA section that
// s starts with. Unterminated markup runs to the end of s.
func markupLength(s string) int {
	var start int
	var terminator string
	switch {
	case strings.HasPrefix(s, "<!--"):
		start, terminator = 2, "-->"
	case strings.HasPrefix(s, "<![CDATA["):
		start, terminator = 9, "]]>"
	default:
		start, terminator = 1, ">"
	}

	end := strings.Index(s[start:], terminator)
	if end < 0 {
		return len(s)
	}
	return start + end + len(terminator)
}

// collapseOptionSpace removes whitespace around <option> elements.
func collapseOptionSpace(text string) string {
	if !strings.Contains(text, "<option") {
		return text
	}
	text = spaceBeforeOption.ReplaceAllString(text, "<option")
	return spaceAfterOption.ReplaceAllString(text, "</option>")
}

// collapseObjectSpace removes whitespace just inside <object> and around
// <param> and <embed>.
func collapseObjectSpace(text string) string {
	if !strings.Contains(text, "</object>") {
		return text
	}
	text = spaceAfterObject.ReplaceAllString(text, "$1")
	text = spaceBeforeObject.ReplaceAllString(text, "</object>")
	return spaceAroundParam.ReplaceAllString(text, "$1")
}

// collapseMediaSpace removes whitespace inside audio/video containers, in
// either tag or shortcode form, and around <source> and <track>.
func collapseMediaSpace(text string) string {
	if !strings.Contains(text, "<source") && !strings.Contains(text, "<track") {
		return text
	}
	text = spaceAfterMedia.ReplaceAllString(text, "$1")
	text = spaceBeforeMedia.ReplaceAllString(text, "$1")
	return spaceAroundSource.ReplaceAllString(text, "$1")
}

// collapseBlankLines limits runs of newlines to one blank line.
func collapseBlankLines(text string) string {
	return blankLines.ReplaceAllString(text, "\n\n")
}

// wrapParagraphs splits text on blank lines and wraps every non-empty piece
// in <p>, one paragraph per line.
func wrapParagraphs(text string) string {
	var b strings.Builder
	for _, piece := range paragraphSplit.Split(text, -1) {
		if piece == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.Trim(piece, "\n"))
		b.WriteString("</p>\n")
	}
	return b.String()
}

// removeEmptyParagraphs drops paragraphs holding only whitespace.
func removeEmptyParagraphs(text string) string {
	return emptyParagraph.ReplaceAllString(text, "")
}

// closeParagraphInBlock moves a paragraph's end inside the div, address or
// form closing tag that directly follows its text.
func closeParagraphInBlock(text string) string {
	return unclosedInBlock.ReplaceAllString(text, "<p>$1</p></$2>")
}

// unwrapBlockTags removes <p> around a lone block opening or closing tag.
func unwrapBlockTags(text string) string {
	return wrappedBlockTag.ReplaceAllString(text, "$1")
}

// unwrapListItems removes <p> around list items.
func unwrapListItems(text string) string {
	return wrappedListItem.ReplaceAllString(text, "$1")
}

// nestBlockquoteParagraphs moves paragraphs inside the blockquote they wrap.
func nestBlockquoteParagraphs(text string) string {
	text = wrappedQuoteOpen.ReplaceAllString(text, "<blockquote$1><p>")
	return strings.ReplaceAll(text, "</blockquote></p>", "</p></blockquote>")
}

// stripParagraphsAroundBlocks drops <p> right before a block tag and </p>
// right after one.
func stripParagraphsAroundBlocks(text string) string {
	text = openBeforeBlock.ReplaceAllString(text, "$1")
	return closeAfterBlock.ReplaceAllString(text, "$1")
}

// convertLineBreaks turns every newline not already preceded by <br /> into
// "<br />\n". Newlines inside <script> and <style> are kept as they are.
func convertLineBreaks(text string) string {
	text = replaceAll(scriptOrStyle, text, func(m string) string {
		return strings.ReplaceAll(m, "\n", preservedNewline)
	})
	text = brSpellingReplace.Replace(text)
	text = replaceAll(unbrokenNewline, text, func(string) string { return "<br />\n" })
	return strings.ReplaceAll(text, preservedNewline, "\n")
}

// trimFinalParagraphBreak removes the newline before a </p> that ends the
// text, optionally followed by one last newline.
func trimFinalParagraphBreak(text string) string {
	return finalParagraphBreak.ReplaceAllString(text, "</p>$1")
}

// dropBreakAfterBlock removes a <br /> that follows a block tag.
func dropBreakAfterBlock(text string) string {
	return breakAfterBlock.ReplaceAllString(text, "$1")
}

// dropBreakBeforeCloser removes a <br /> in front of p, li, div, dl, dd,
// dt, th, pre, td, ul and ol tags.
func dropBreakBeforeCloser(text string) string {
	return breakBeforeCloser.ReplaceAllString(text, "$1")
}

// restoreTagNewlines undoes protectTagNewlines.
func restoreTagNewlines(text string) string {
	if !strings.Contains(text, tagNewlineBare) {
		return text
	}
	text = strings.ReplaceAll(text, TagNewline, "\n")
	return strings.ReplaceAll(text, tagNewlineBare, "\n")
}

// replaceAll substitutes every match of re in text with repl(match).
//
// regexp2 matches on runes, and its string API re-encodes the whole input,
// turning invalid UTF-8 bytes into U+FFFD. The input is decoded here
// instead, with offsets back into text, so everything outside a match is
// copied byte for byte. regexp2 only fails on match timeouts, which are not
// configured, so an error leaves text as is.
func replaceAll(re *regexp2.Regexp, text string, repl func(string) string) string {
	runes, offsets := decodeRunes(text)

	m, err := re.FindRunesMatch(runes)
	if err != nil || m == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for m != nil {
		start, end := offsets[m.Index], offsets[m.Index+m.Length]
		b.WriteString(text[last:start])
		b.WriteString(repl(text[start:end]))
		last = end

		if m, err = re.FindNextMatch(m); err != nil {
			return text
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

// decodeRunes splits text into runes. offsets[i] is the byte offset of
// rune i, and offsets[len(runes)] is len(text). An invalid byte becomes a
// single utf8.RuneError.
func decodeRunes(text string) ([]rune, []int) {
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	return runes, append(offsets, len(text))
}
