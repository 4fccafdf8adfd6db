// Package stream implements the short-lived accumulator behind one log
// statement.
//
// A Stream is bound to a call site Location, a Level and a core.Sink. It
// collects appended values into a text buffer and hands the finished line
// to the sink exactly once, when Close is called. Close plays the role of
// a destructor and is meant to be deferred right after construction:
//
//	s := stream.New(core.Caller(0), core.Info2, sink)
//	defer s.Close()
//	s.Append("loaded ").Append(n).Append(" tiles")
//
// A deferred Close runs on normal return, early return and panic
// unwinding alike, so a constructed stream always delivers. Run wraps this
// pattern around a function.
//
// A nil *Stream is valid and inert. The logger package returns nil when
// the level gate denies a statement, which keeps a disabled statement
// down to the gate check.
package stream
