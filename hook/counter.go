package hook

import (
	"sync/atomic"

	"github.com/philipp01105/streamlog/core"
)

// Counter tracks how many lines reached it, per level.
type Counter struct {
	byLevel [core.FatalLevel + 1]atomic.Uint64
}

// NewCounter creates a new Counter
func NewCounter() *Counter {
	return &Counter{}
}

// Hook returns the counting hook.
func (c *Counter) Hook() Hook {
	return func(line *core.Line) error {
		if line.Level.Valid() {
			c.byLevel[line.Level].Add(1)
		}
		return nil
	}
}

// Count returns the count for a level
func (c *Counter) Count(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return c.byLevel[level].Load()
}

// Total returns the count across all levels
func (c *Counter) Total() uint64 {
	var n uint64
	for i := range c.byLevel {
		n += c.byLevel[i].Load()
	}
	return n
}

// Reset resets all counters to zero
func (c *Counter) Reset() {
	for i := range c.byLevel {
		c.byLevel[i].Store(0)
	}
}

// Snapshot returns a snapshot of the current counts keyed by level
func (c *Counter) Snapshot() map[core.Level]uint64 {
	out := make(map[core.Level]uint64, len(c.byLevel))
	for i := range c.byLevel {
		out[core.Level(i)] = c.byLevel[i].Load()
	}
	return out
}
