// Package logger is the call-site API of dbglog and its bundled sink.
//
// A log statement evaluates the level gate, and only when it passes
// builds a stream bound to the call site. The stream collects values and
// delivers exactly one line when it is closed:
//
//	s := logger.Begin(logger.Warn2)
//	defer s.Close()
//	s.Append("retrying ").Append(host).Append(" after ").Append(delay)
//
// Begin returns nil for a disabled level and every Stream method accepts
// a nil receiver, so a disabled statement costs one comparison. Log runs
// a function against the stream instead, and Print/Printf cover one-line
// statements. The *To variants take an explicit core.Sink; the *Once
// variants take a core.OnceGuard and fire at most once per guard:
//
//	var cfgWarned core.OnceGuard
//	logger.Once(&cfgWarned, logger.Warn1, func(s *stream.Stream) {
//	    s.Append("config has deprecated keys")
//	})
//
// The package initializes a default Logger (text to stderr, millisecond
// timestamps, threshold Info1 or the value of DBGLOG_LEVEL) in init().
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.Debug).
//	    Build()
//	logger.SetDefault(log)
//
// Logger never lets a handler failure escape a log statement: errors and
// panics are passed to the callback set with WithErrorHandler.
package logger
