// Package core defines the shared types used across streamlog.
//
// It provides the Level type, the Line type that records a single
// committed log event, and the Clock abstraction the engine reads its
// timestamps from.
//
// Level is a total order over none < debug < info < warn < error < fatal.
// Rendering a level that is not one of those six values is a caller bug
// and panics with an error wrapping ErrUnknownLevel.
//
// A Line carries a snapshot of the engine's start time and time
// appearance taken at commit, so rendering a line never has to reach
// back into engine state.
package core
