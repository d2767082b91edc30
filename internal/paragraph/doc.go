// Package paragraph turns loosely formatted text into paragraph markup.
//
// The engine is an ordered list of whole-text rewrite passes:
//   - line-ending and block-tag normalization
//   - splitting on blank lines and wrapping each piece in <p>
//   - repair of the nestings the wrapping step gets wrong
//   - optional conversion of remaining newlines into <br /> markers
//
// Order matters: later passes rely on the shape produced by earlier ones.
// Every pass is total over arbitrary input, malformed markup included.
//
// The engine knows nothing about protected regions. Callers that need
// literal spans kept intact replace them with inert placeholders first
// (see internal/protect).
package paragraph
