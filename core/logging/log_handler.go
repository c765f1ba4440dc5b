package logging

import (
	"time"
)

type LogData struct {
	Time    time.Time
	Path    string
	Name    string
	File    string
	Line    int
	Level   Level
	Message func() string
}

type ILogHandler interface {
	Log(data *LogData)
}
