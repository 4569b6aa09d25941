package hook

import (
	"sync"

	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/formatter"
)

// Pusher accepts rendered lines, e.g. a queue or a channel wrapper.
type Pusher interface {
	Push(s string)
}

// Push returns a hook that renders each line with f and pushes the text
// to p. A nil f selects the default text layout.
func Push(p Pusher, f formatter.Formatter) Hook {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return func(line *core.Line) error {
		data, err := f.Format(line)
		if err != nil {
			return err
		}
		p.Push(string(data))
		return nil
	}
}

// Collector is an in-memory Pusher safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	lines []string
}

// Push appends s.
func (c *Collector) Push(s string) {
	c.mu.Lock()
	c.lines = append(c.lines, s)
	c.mu.Unlock()
}

// Hook returns a Push hook feeding c with the default text layout.
func (c *Collector) Hook() Hook {
	return Push(c, nil)
}

// Lines returns a copy of the collected text.
func (c *Collector) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.lines = c.lines[:0]
	c.mu.Unlock()
}

// Recorder keeps a copy of every line it observes.
type Recorder struct {
	mu    sync.Mutex
	lines []core.Line
}

// Hook returns the recording hook.
func (r *Recorder) Hook() Hook {
	return func(line *core.Line) error {
		r.mu.Lock()
		r.lines = append(r.lines, *line)
		r.mu.Unlock()
		return nil
	}
}

// Lines returns the recorded lines in observation order.
func (r *Recorder) Lines() []core.Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}
