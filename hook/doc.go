// Package hook provides the observer chain the engine runs for every
// kept line, and the built-in observers.
//
// A Hook is a function receiving the committed line. Returning an error
// (or panicking) stops the chain; the engine stores the failure and
// reports it on its next entry point rather than to the caller whose
// line triggered it.
//
// Built-in hooks:
//
//   - Writer renders lines to any io.Writer under the shared output lock.
//     Stderr is the engine's default hook.
//   - File appends rendered lines to a file through a buffered writer.
//   - Push hands rendered text to anything with a Push(string) method;
//     Collector is a ready-made in-memory Pusher.
//   - Recorder keeps copies of the lines themselves.
//   - Tie annotates the line in place for the hooks after it.
//   - Counter tracks delivered lines per level.
//   - Zap, Zerolog and Logrus forward lines into those loggers.
package hook
