package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is the timestamp source of the engine. Now must be safe for
// concurrent use and must not block. Values are expected to carry a
// monotonic reading so that elapsed-time columns never run backwards.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now on every call.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value, starting
// the coarse clock on first use.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	StartCoarseClock()
	return *coarseNow.Load()
}

// CoarseClock is a Clock backed by the cached coarse time. It trades
// up to half a millisecond of precision for a cheaper Now. The zero
// value is ready to use.
type CoarseClock struct{}

// NewCoarseClock starts the coarse clock goroutine if needed.
func NewCoarseClock() CoarseClock {
	StartCoarseClock()
	return CoarseClock{}
}

// Now returns the cached time.
func (CoarseClock) Now() time.Time {
	return CoarseNow()
}
