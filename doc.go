// Package autop turns plain text with embedded HTML into paragraph markup
// while leaving <pre> blocks and chosen shortcodes untouched.
//
// # Quick Start
//
// Create a formatter once and reuse it:
//
//	f, err := autop.NewFormatter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html := f.Content("Hello\n\nWorld")
//	// <p>Hello</p>\n<p>World</p>\n
//
// Double line breaks become paragraphs and single line breaks become
// <br /> markers. Block-level elements such as <div>, <table> or <ul> are
// kept out of paragraphs.
//
// # Protected Regions
//
// The interior of <pre> blocks and of [noformat]...[/noformat] shortcodes
// is never paragraphed. More shortcodes can be protected:
//
//	f, err := autop.NewFormatter(
//	    autop.WithShortcodes("code", "raw"),
//	    autop.WithLineBreaks(false),
//	)
//
// The shortcode markers themselves stay in the output; rendering them is
// left to whatever shortcode handler runs next. NoFormat is the handler for
// the built-in shortcode and simply returns its content.
//
// # Hooks
//
// Hooks models a content pipeline with two filter chains, HookContent and
// HookExcerpt, each starting with the default unconditional paragraphing
// filter. Formatter.Install swaps that default for the formatter:
//
//	hooks := autop.NewHooks()
//	f.Install(hooks)
//	out := hooks.Apply(autop.HookContent, post)
//
// # Concurrency
//
// A Formatter is immutable once built; Content, Excerpt and Autop are safe
// for concurrent use.
package autop
