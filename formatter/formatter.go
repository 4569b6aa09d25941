package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/streamlog/core"
)

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format renders a line into bytes
	Format(line *core.Line) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo renders a line and writes it directly to the writer
	FormatTo(line *core.Line, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to render directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatLine renders a line into the given buffer.
	FormatLine(line *core.Line, buf *bytes.Buffer)
}

// Config holds formatter configuration
type Config struct {
	// Precision is the number of decimals in the elapsed-seconds column
	// (default 6)
	Precision int
	// OmitSource drops the source file, line and function columns even
	// when the line carries them
	OmitSource bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

var defaultText = NewTextFormatter(Config{})

// Render returns the text of line in the default layout.
func Render(line *core.Line) string {
	buf := getBuffer()
	defaultText.FormatLine(line, buf)
	s := buf.String()
	putBuffer(buf)
	return s
}
