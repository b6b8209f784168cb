// Package sink implements the output destinations of coloring-tee and the
// Multiplexer that fans every write out to all of them.
//
// A Sink is one destination: the console (ANSI escapes), a plain file (raw
// text only) or an HTML file (inline-styled paragraphs). Each sink is either
// open or closed; a closed sink rejects writes with an ErrSinkClosed error.
//
// The Multiplexer owns an ordered list of sinks. Every operation is broadcast
// in registration order. Closed sinks are skipped silently, and styling calls
// are skipped for sinks whose coloring is disabled, while text still flows.
package sink
