//go:build !linux

package ioctl

import (
	"errors"
	"fmt"
	"runtime"
)

// Device is only available on linux.
type Device struct{}

var _ Channel = &Device{}

var errUnsupportedPlatform = errors.New("tuxedo_io is only available on linux")

func Open(path string) (*Device, error) {
	return nil, fmt.Errorf("failed to open device %s on %s: %w", path, runtime.GOOS, errUnsupportedPlatform)
}

func (d *Device) Path() string {
	return ""
}

func (d *Device) Read(request Request) (int32, error) {
	return 0, newError("read", request, errUnsupportedPlatform)
}

func (d *Device) Write(request Request, value uint32) error {
	return newError("write", request, errUnsupportedPlatform)
}

func (d *Device) ReadString(request Request, length int) (string, error) {
	return "", newError("read", request, errUnsupportedPlatform)
}

func (d *Device) Close() error {
	return nil
}
