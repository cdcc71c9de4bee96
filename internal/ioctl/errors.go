package ioctl

import (
	"errors"
	"fmt"
)

var ErrClosed = errors.New("ioctl channel closed")

// Error describes a failed transfer on a Channel.
type Error struct {
	Op      string
	Request Request
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ioctl %s %s: %v", e.Op, e.Request, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, request Request, err error) error {
	return &Error{
		Op:      op,
		Request: request,
		Err:     err,
	}
}
