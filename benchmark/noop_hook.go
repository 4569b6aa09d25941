package benchmark

import (
	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/hook"
)

func newNoopHook() hook.Hook {
	return func(line *core.Line) error {
		_ = len(line.Message)
		return nil
	}
}
