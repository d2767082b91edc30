// Package protect hides literal regions of a document behind inert
// placeholders and puts them back afterwards.
//
// Two families of regions are recognized: <pre> blocks and bracketed
// shortcodes such as [noformat]...[/noformat]. Each occurrence is replaced
// by a Placeholder whose text passes through paragraph formatting intact.
// Set.Restore swaps the originals back in byte for byte.
package protect
