// Package encoder turns abstract color and attribute events into the native
// representation of a destination.
//
// Two encoders exist:
//
//   - AnsiEncoder writes SGR escape sequences around verbatim text, for
//     terminal-like streams.
//   - HTMLEncoder keeps the requested style as pending CSS fragments and
//     turns every style change into a paragraph boundary, escaping text
//     through Escape.
//
// Encoders never reject text. They only fail when the underlying writer does.
package encoder

