package console

import (
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/mogud/jenga/core/logging"
)

var _ logging.ILogHandler = (*Handler)(nil)

type Option struct {
	Formatter     string
	FileLineLevel logging.Level
	FileLineSkip  int
	ErrorLevel    logging.Level
	// Filter maps a logger path prefix to the minimum level logged for it.
	Filter       map[string]logging.Level
	DefaultLevel logging.Level
}

func DefaultOption() *Option {
	return &Option{
		Formatter:     "Color",
		FileLineLevel: logging.ERROR,
		FileLineSkip:  4,
		ErrorLevel:    logging.ERROR,
		Filter:        make(map[string]logging.Level),
		DefaultLevel:  logging.INFO,
	}
}

type Handler struct {
	lock             sync.Mutex
	option           *Option
	sortedFilterKeys []string
	formatter        func(logData *logging.LogData) string
	out              io.Writer
	err              io.Writer
}

func NewHandler() *Handler {
	handler := &Handler{out: os.Stdout, err: os.Stderr}
	handler.Configure(DefaultOption(), nil)
	return handler
}

// SetOutput redirects messages below ErrorLevel to out and the rest to err.
func (ss *Handler) SetOutput(out, err io.Writer) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.out, ss.err = out, err
}

// Configure swaps the option in. A nil repo or an unknown formatter name
// falls back to the color formatter.
func (ss *Handler) Configure(opt *Option, repo *logging.LogFormatterContainer) {
	formatter := logging.ColorLogFormatter
	if repo != nil {
		if f := repo.GetFormatter(opt.Formatter); f != nil {
			formatter = f
		}
	}
	if opt.DefaultLevel == logging.NONE {
		opt.DefaultLevel = logging.INFO
	}
	keys := slices.Sorted(maps.Keys(opt.Filter))
	// longest prefix wins
	slices.Reverse(keys)

	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.option = opt
	ss.sortedFilterKeys = keys
	ss.formatter = formatter
}

func (ss *Handler) Log(logData *logging.LogData) {
	if logData.Level == logging.NONE {
		return
	}

	ss.lock.Lock()
	curOption := ss.option
	filterKeys := ss.sortedFilterKeys
	formatter := ss.formatter
	out, errOut := ss.out, ss.err
	ss.lock.Unlock()

	filterLevel := curOption.DefaultLevel
	for _, key := range filterKeys {
		if strings.HasPrefix(logData.Path, key) {
			filterLevel = curOption.Filter[key]
			break
		}
	}

	if logData.Level < filterLevel {
		return
	}

	if len(logData.File) == 0 && logData.Level >= curOption.FileLineLevel {
		_, fn, ln, _ := runtime.Caller(curOption.FileLineSkip)
		d := *logData
		d.File, d.Line = fn, ln
		logData = &d
	}

	message := formatter(logData)

	if logData.Level < curOption.ErrorLevel {
		_, _ = fmt.Fprintln(out, message)
	} else {
		_, _ = fmt.Fprintln(errOut, message)
	}
}
