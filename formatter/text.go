package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/streamlog/core"
)

// LevelWidth is the fixed width of the level column.
const LevelWidth = 11

const defaultPrecision = 6

// TextFormatter renders lines in the tab-separated text layout
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Precision <= 0 {
		cfg.Precision = defaultPrecision
	}
	return &TextFormatter{Config: cfg}
}

// Format renders a line as text
func (f *TextFormatter) Format(line *core.Line) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatLine(line, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo renders a line and writes it directly to the writer
func (f *TextFormatter) FormatTo(line *core.Line, w io.Writer) error {
	buf := getBuffer()

	f.FormatLine(line, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// padding is sliced to fill the level column
const padding = "           "

// FormatLine writes the rendered line into buf
func (f *TextFormatter) FormatLine(line *core.Line, buf *bytes.Buffer) {
	switch line.Appearance {
	case core.SecondsFromEpoch:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), line.Time.Unix(), 10))
	default:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), line.Elapsed().Seconds(), 'f', f.Precision, 64))
	}
	buf.WriteByte('\t')

	name := line.Level.String()
	if len(name) > LevelWidth {
		name = name[:LevelWidth]
	}
	buf.WriteString(name)
	buf.WriteString(padding[:LevelWidth-len(name)])
	buf.WriteByte('\t')

	if !f.OmitSource && line.HasSource() {
		buf.WriteString(line.SourceFile)
		buf.WriteByte('\t')
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(line.SourceLine), 10))
		buf.WriteByte('\t')
		buf.WriteString(line.SourceFunction)
		buf.WriteByte('\t')
	}

	buf.WriteString(line.Message)
	buf.WriteByte('\n')
}
