package logging

import (
	"fmt"
	"strings"
)

type Level int

const (
	NONE Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	if l > NONE && int(l) < len(l2info) {
		return strings.TrimSpace(l2info[l].str)
	}
	return "NONE"
}

// ParseLevel accepts level names in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return NONE, nil
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	}
	return NONE, fmt.Errorf("unknown log level(%s)", s)
}
