package hal

import "errors"

var (
	// ErrDeviceNotAvailable signals that the hardware, or one of its optional features, is not present
	ErrDeviceNotAvailable = errors.New("device not available")
	// ErrInvalidArguments signals a value outside the accepted domain
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrUnimplemented signals a capability this hardware family never provides
	ErrUnimplemented = errors.New("not implemented")
)
