package api

// Logger is the leveled logger the transport reports request activity
// to. Any logging backend can be adapted to it.
type Logger interface {
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Errorf(format string, v ...interface{}) {}
func (noopLogger) Warnf(format string, v ...interface{})  {}
func (noopLogger) Debugf(format string, v ...interface{}) {}

// NoopLogger returns a Logger that discards everything. It is the
// default when no logger is configured.
func NoopLogger() Logger {
	return noopLogger{}
}
