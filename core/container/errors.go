package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyContainer       = errors.New("container is empty")
	ErrRange                = errors.New("out of range")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrConversion           = errors.New("conversion failed")
)

// Fault is the error returned by container operations. Kind is one of the
// Err* sentinels and is what errors.Is matches against.
type Fault struct {
	Kind  error
	Op    string
	Param string
	Value any
	Limit any
	Msg   string
}

func (e *Fault) Unwrap() error {
	return e.Kind
}

func (e *Fault) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Op)
	if e.Param != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Param)
		if e.Value != nil {
			buf.WriteString(fmt.Sprintf("=%v", e.Value))
		}
		if e.Limit != nil {
			buf.WriteString(fmt.Sprintf(" (limit %v)", e.Limit))
		}
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	buf.WriteString(": ")
	buf.WriteString(e.Kind.Error())
	return buf.String()
}

func emptyFault(op string) error {
	return &Fault{Kind: ErrEmptyContainer, Op: op}
}

func rangeFault(op, param string, value, limit any) error {
	return &Fault{Kind: ErrRange, Op: op, Param: param, Value: value, Limit: limit}
}

func unsupportedFault(op, msg string) error {
	return &Fault{Kind: ErrUnsupportedOperation, Op: op, Msg: msg}
}
