package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// osExit and quickExit are variables to allow overriding process exit
// in tests
var (
	osExit    = os.Exit
	quickExit = os.Exit
)

// ErrUnknownPolicy is returned when parsing an unrecognised fatal policy.
var ErrUnknownPolicy = errors.New("logger: unknown fatal policy")

// FatalPolicy selects what happens after a fatal line has been delivered
// to the hooks.
type FatalPolicy uint8

const (
	// FatalNone takes no further action (default)
	FatalNone FatalPolicy = iota
	// FatalExit tears the logger down, then exits with status 1
	FatalExit
	// FatalQuickExit exits with status 1 immediately, skipping teardown
	FatalQuickExit
	// FatalException makes the committing Close return a *FatalError
	FatalException
)

// String returns the string representation of the policy
func (p FatalPolicy) String() string {
	switch p {
	case FatalNone:
		return "none"
	case FatalExit:
		return "exit"
	case FatalQuickExit:
		return "quick_exit"
	case FatalException:
		return "exception"
	default:
		return "unknown"
	}
}

// ParseFatalPolicy converts a policy name to a FatalPolicy
func ParseFatalPolicy(s string) (FatalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return FatalNone, nil
	case "exit":
		return FatalExit, nil
	case "quick_exit", "quickexit":
		return FatalQuickExit, nil
	case "exception", "error":
		return FatalException, nil
	default:
		return FatalNone, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p FatalPolicy) MarshalText() ([]byte, error) {
	if p > FatalException {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FatalPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseFatalPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// FatalError is returned by the Close that committed a fatal line under
// FatalException. Line holds the rendered text of that line.
type FatalError struct {
	Line string
}

func (e *FatalError) Error() string {
	return "logger: fatal: " + strings.TrimSuffix(e.Line, "\n")
}

// applyFatal runs policy for a fatal line that has already been
// delivered to the hooks.
func (l *Logger) applyFatal(policy FatalPolicy, rendered func() string) error {
	l.diagnose("fatal line committed, if_fatal=%s", policy)
	switch policy {
	case FatalExit:
		l.Teardown()
		osExit(1)
	case FatalQuickExit:
		quickExit(1)
	case FatalException:
		return &FatalError{Line: rendered()}
	}
	return nil
}
