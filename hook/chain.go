package hook

import (
	"github.com/philipp01105/streamlog/core"
)

// Chain is an ordered list of hooks. Registration order is invocation
// order.
type Chain []Hook

// NewChain creates a chain from hooks, skipping nil entries.
func NewChain(hooks ...Hook) Chain {
	c := make(Chain, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			c = append(c, h)
		}
	}
	return c
}

// Run invokes every hook in order and stops at the first failure. A
// panicking hook is reported as a *PanicError.
func (c Chain) Run(line *core.Line) error {
	for _, h := range c {
		if h == nil {
			continue
		}
		if err := call(h, line); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy that shares no backing array with c.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	copy(out, c)
	return out
}

func call(h Hook, line *core.Line) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return h(line)
}
