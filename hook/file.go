package hook

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/formatter"
)

// ErrFileClosed is returned by the hook of a closed File.
var ErrFileClosed = errors.New("hook: file closed")

// FileConfig holds configuration for a file sink
type FileConfig struct {
	// Filename is the path to append to (required)
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// BufferSize of the buffered writer in bytes (default: 4096)
	BufferSize int
	// Perm used when the file is created (default: 0644)
	Perm os.FileMode
	// FlushEveryLine flushes the buffered writer after each line
	FlushEveryLine bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// File appends rendered lines to a file. It never rotates.
type File struct {
	mu              sync.Mutex
	file            *os.File
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	syncBuf         bytes.Buffer
	flushEveryLine  bool
	closed          bool
}

// NewFile opens (or creates) cfg.Filename for appending.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Filename == "" {
		return nil, errors.New("hook: file sink needs a filename")
	}
	applyFileDefaults(&cfg)

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("hook: open %s: %w", cfg.Filename, err)
	}

	f := &File{
		file:           file,
		bufWriter:      bufio.NewWriterSize(file, cfg.BufferSize),
		formatter:      cfg.Formatter,
		flushEveryLine: cfg.FlushEveryLine,
	}
	f.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return f, nil
}

// Hook returns the hook writing into f.
func (f *File) Hook() Hook {
	return f.write
}

func (f *File) write(line *core.Line) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFileClosed
	}

	if f.bufferFormatter != nil {
		f.syncBuf.Reset()
		f.bufferFormatter.FormatLine(line, &f.syncBuf)
		if _, err := f.bufWriter.Write(f.syncBuf.Bytes()); err != nil {
			return err
		}
	} else {
		data, err := f.formatter.Format(line)
		if err != nil {
			return err
		}
		if _, err := f.bufWriter.Write(data); err != nil {
			return err
		}
	}

	if f.flushEveryLine {
		return f.bufWriter.Flush()
	}
	return nil
}

// Flush writes buffered lines to the file.
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFileClosed
	}
	return f.bufWriter.Flush()
}

// Close flushes and closes the file. Closing twice is a no-op.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	flushErr := f.bufWriter.Flush()
	if err := f.file.Close(); err != nil {
		return err
	}
	return flushErr
}
