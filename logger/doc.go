// Package logger is the public API of streamlog. Most users only need
// to import this package.
//
// A Logger hands out Streams. A Stream collects text and commits it as
// one line when it is closed:
//
//	func retry(log *logger.Logger, backoff time.Duration) (err error) {
//	    s, err := log.Open(logger.WithLevel(logger.WarnLevel))
//	    if err != nil {
//	        return err
//	    }
//	    defer func() { err = errors.Join(err, s.Close()) }()
//	    s.Append("retrying in ", backoff)
//	    return nil
//	}
//
// Close returns errors worth checking: a hook error deferred from an
// earlier line, or a *FatalError under FatalException.
//
// Commit filters the line by the keep level, runs the hook chain in
// registration order and, for fatal lines, applies the fatal policy.
// The very first commit of a Logger is preceded by a synthetic
// "login time" line, and Teardown commits a "logout time" line before
// running the teardown callback.
//
// Hook failures are deferred. The Close whose line made a hook fail
// returns nil; the error comes back from the next entry point instead
// (Open, Close, Log, or any getter or setter), which then does nothing
// else. This can surprise callers who expect an error to match the
// statement that caused it.
//
// Callers racing the first commit wait until the login line has been
// delivered. A hook must therefore not log while it handles the login
// line.
//
// The package also keeps a process-wide Logger, built lazily by
// Instance and torn down by Shutdown. Open, Log and Debug..Fatal
// delegate to it:
//
//	defer logger.Shutdown()
//	logger.Info("ready on port ", 8080)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithKeepLevel(logger.InfoLevel).
//	    WithHooks(hook.Stderr(), hook.ZapLogger(z)).
//	    WithIfFatal(logger.FatalException).
//	    Build()
package logger
