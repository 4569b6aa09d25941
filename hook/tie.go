package hook

import "github.com/philipp01105/streamlog/core"

// Tie returns a hook that lets fn edit the line in place. Hooks
// registered after it see the edited line.
func Tie(fn func(line *core.Line)) Hook {
	return func(line *core.Line) error {
		fn(line)
		return nil
	}
}
