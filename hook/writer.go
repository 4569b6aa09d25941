package hook

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/formatter"
)

var writeBufPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Writer returns a hook that renders each line with f and writes it to w
// under the shared output lock. A nil f selects the default text layout.
// Formatters implementing BufferFormatter or WriterFormatter skip the
// intermediate byte slice.
func Writer(w io.Writer, f formatter.Formatter) Hook {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	// Prefer the buffer path so the line is rendered outside the lock.
	if bf, ok := f.(formatter.BufferFormatter); ok {
		return func(line *core.Line) error {
			buf := writeBufPool.Get().(*bytes.Buffer)
			buf.Reset()
			bf.FormatLine(line, buf)
			_, err := WriteLocked(w, buf.Bytes())
			if buf.Cap() <= 64*1024 {
				writeBufPool.Put(buf)
			}
			return err
		}
	}
	if wf, ok := f.(formatter.WriterFormatter); ok {
		return func(line *core.Line) error {
			outputMu.Lock()
			defer outputMu.Unlock()
			return wf.FormatTo(line, w)
		}
	}
	return func(line *core.Line) error {
		data, err := f.Format(line)
		if err != nil {
			return err
		}
		_, err = WriteLocked(w, data)
		return err
	}
}

// Stderr returns the default hook: the text layout written to the
// process diagnostic stream.
func Stderr() Hook {
	return Writer(os.Stderr, nil)
}
