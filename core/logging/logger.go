package logging

// ILogger is the logging surface handed to components. Fatalf only logs at
// FATAL level; terminating the process is up to the caller.
type ILogger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}
