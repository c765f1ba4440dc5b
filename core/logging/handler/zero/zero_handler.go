package zero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/mogud/jenga/core/logging"
)

var _ logging.ILogHandler = (*Handler)(nil)

// Handler writes one JSON object per record through zerolog. Records below
// MinLevel are dropped.
type Handler struct {
	logger   zerolog.Logger
	minLevel logging.Level
}

func NewHandler(w io.Writer, minLevel logging.Level) *Handler {
	return &Handler{
		logger:   zerolog.New(w),
		minLevel: minLevel,
	}
}

func (ss *Handler) Log(data *logging.LogData) {
	if data.Level == logging.NONE || data.Level < ss.minLevel {
		return
	}

	ev := ss.logger.WithLevel(toZerolog(data.Level)).
		Time(zerolog.TimestampFieldName, data.Time).
		Str("path", data.Path)
	if len(data.Name) != 0 {
		ev = ev.Str("name", data.Name)
	}
	if len(data.File) != 0 {
		ev = ev.Str("file", data.File).Int("line", data.Line)
	}
	ev.Msg(data.Message())
}

func toZerolog(l logging.Level) zerolog.Level {
	switch l {
	case logging.TRACE:
		return zerolog.TraceLevel
	case logging.DEBUG:
		return zerolog.DebugLevel
	case logging.INFO:
		return zerolog.InfoLevel
	case logging.WARN:
		return zerolog.WarnLevel
	case logging.ERROR:
		return zerolog.ErrorLevel
	case logging.FATAL:
		// WithLevel(FatalLevel) logs without exiting
		return zerolog.FatalLevel
	}
	return zerolog.NoLevel
}
