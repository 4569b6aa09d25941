package hook

import (
	"fmt"
	"io"
	"sync"

	"github.com/philipp01105/streamlog/core"
)

// Hook observes one committed line. It may return an error to stop the
// chain.
type Hook func(line *core.Line) error

// PanicError wraps a value recovered from a panicking hook.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("hook: panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// outputMu is the shared output lock. Every Writer hook and the engine's
// own diagnostics take it for the duration of a single Write call.
var outputMu sync.Mutex

// WriteLocked writes p to w while holding the shared output lock.
func WriteLocked(w io.Writer, p []byte) (int, error) {
	outputMu.Lock()
	n, err := w.Write(p)
	outputMu.Unlock()
	return n, err
}
