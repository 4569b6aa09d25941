// Package formatter defines how committed lines are rendered to text.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends to a caller-owned buffer. Hooks check
// for the richer interfaces at construction time and prefer them.
//
// TextFormatter produces the stable tab-separated line layout:
//
//	<time>\t<level padded to 11>\t[<file>\t<line>\t<function>\t]<message>\n
//
// The time column is either fractional seconds since the engine started
// or whole Unix seconds, depending on the Appearance captured in the
// line. Buffers larger than 64 KiB are not returned to the pool.
package formatter
