package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/hook"
)

// Settings is the serialisable part of a Logger's configuration.
//
//	default_level   = "info"
//	keep_level      = "debug"
//	if_fatal        = "none"
//	time_appearance = "seconds_from_start"
//	time_format     = "utc"
//	output          = "stderr"
type Settings struct {
	DefaultLevel   core.Level          `toml:"default_level"`
	KeepLevel      core.Level          `toml:"keep_level"`
	IfFatal        FatalPolicy         `toml:"if_fatal"`
	TimeAppearance core.TimeAppearance `toml:"time_appearance"`
	TimeFormat     core.TimeFormat     `toml:"time_format"`
	// Output is "stderr", "stdout", "none" or a file path to append to
	Output string `toml:"output"`
}

// DefaultSettings returns the settings a Logger starts with
func DefaultSettings() Settings {
	return Settings{
		DefaultLevel:   core.InfoLevel,
		KeepLevel:      core.DebugLevel,
		IfFatal:        FatalNone,
		TimeAppearance: core.SecondsFromStart,
		TimeFormat:     core.TimeFormatUTC,
		Output:         "stderr",
	}
}

// LoadConfig reads TOML settings from path on top of DefaultSettings.
// Unknown keys are an error.
func LoadConfig(path string) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("logger: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("logger: load %s: unknown keys %v", path, undecoded)
	}
	return s, nil
}

// FromEnv overlays STREAMLOG_* environment variables onto s. Values that
// do not parse are ignored.
func FromEnv(s *Settings) {
	if v := os.Getenv("STREAMLOG_DEFAULT_LEVEL"); v != "" {
		if l, err := core.ParseLevel(v); err == nil {
			s.DefaultLevel = l
		}
	}
	if v := os.Getenv("STREAMLOG_KEEP_LEVEL"); v != "" {
		if l, err := core.ParseLevel(v); err == nil {
			s.KeepLevel = l
		}
	}
	if v := os.Getenv("STREAMLOG_IF_FATAL"); v != "" {
		if p, err := ParseFatalPolicy(v); err == nil {
			s.IfFatal = p
		}
	}
	if v := os.Getenv("STREAMLOG_TIME_APPEARANCE"); v != "" {
		var a core.TimeAppearance
		if err := a.UnmarshalText([]byte(v)); err == nil {
			s.TimeAppearance = a
		}
	}
	if v := os.Getenv("STREAMLOG_TIME_FORMAT"); v != "" {
		var f core.TimeFormat
		if err := f.UnmarshalText([]byte(v)); err == nil {
			s.TimeFormat = f
		}
	}
	if v := os.Getenv("STREAMLOG_OUTPUT"); v != "" {
		s.Output = v
	}
}

// Apply copies s onto b. A file Output is opened here, flushed after
// every line and closed by the built Logger's Teardown.
func (s Settings) Apply(b *Builder) error {
	b.WithDefaultLevel(s.DefaultLevel).
		WithKeepLevel(s.KeepLevel).
		WithIfFatal(s.IfFatal).
		WithTimeAppearance(s.TimeAppearance).
		WithTimeFormat(s.TimeFormat)

	switch strings.ToLower(s.Output) {
	case "", "stderr":
		b.WithHooks(hook.Stderr())
	case "stdout":
		b.WithHooks(hook.Writer(os.Stdout, nil))
	case "none", "discard":
		b.WithHooks()
	default:
		f, err := hook.NewFile(hook.FileConfig{Filename: s.Output, FlushEveryLine: true})
		if err != nil {
			return err
		}
		b.WithHooks(f.Hook()).WithCloser(f)
	}
	return nil
}
