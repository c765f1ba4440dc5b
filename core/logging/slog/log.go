package slog

import (
	"sync/atomic"

	"github.com/mogud/jenga/core/logging"
	"github.com/mogud/jenga/core/logging/handler/console"
)

type loggerBox struct {
	logger logging.ILogger
}

var global atomic.Pointer[loggerBox]

// BindGlobalLogger replaces the logger behind the package functions.
func BindGlobalLogger(l logging.ILogger) {
	global.Store(&loggerBox{l})
}

// BindGlobalHandler routes the package functions through h.
func BindGlobalHandler(h logging.ILogHandler) {
	BindGlobalLogger(logging.NewDefaultLogger("Global", h, nil))
}

// Logger returns the global logger, creating a console one on first use.
func Logger() logging.ILogger {
	if box := global.Load(); box != nil {
		return box.logger
	}
	global.CompareAndSwap(nil, &loggerBox{logging.NewDefaultLogger("Global", console.NewHandler(), nil)})
	return global.Load().logger
}

func Tracef(format string, args ...any) {
	Logger().Tracef(format, args...)
}

func Debugf(format string, args ...any) {
	Logger().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Logger().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	Logger().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	Logger().Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	Logger().Fatalf(format, args...)
}
