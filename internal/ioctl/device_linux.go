//go:build linux

package ioctl

import (
	"bytes"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device is a Channel backed by an open file descriptor of the tuxedo_io character device.
type Device struct {
	path string

	mu sync.RWMutex
	fd int
}

var _ Channel = &Device{}

// Open opens the character device at the given path for ioctl transfers.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open device %s: %w", path, err)
	}
	return &Device{
		path: path,
		fd:   fd,
	}, nil
}

func (d *Device) Path() string {
	return d.path
}

func (d *Device) Read(request Request) (int32, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fd < 0 {
		return 0, newError("read", request, ErrClosed)
	}

	value, err := unix.IoctlGetUint32(d.fd, request.Number)
	if err != nil {
		return 0, newError("read", request, err)
	}
	return int32(value), nil
}

func (d *Device) Write(request Request, value uint32) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fd < 0 {
		return newError("write", request, ErrClosed)
	}

	var err error
	if request.HasArgument() {
		err = unix.IoctlSetPointerInt(d.fd, request.Number, int(int32(value)))
	} else {
		err = unix.IoctlSetInt(d.fd, request.Number, int(value))
	}
	if err != nil {
		return newError("write", request, err)
	}
	return nil
}

func (d *Device) ReadString(request Request, length int) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.fd < 0 {
		return "", newError("read", request, ErrClosed)
	}

	if length <= 0 {
		return "", newError("read", request, unix.EINVAL)
	}

	buf := make([]byte, length)
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(d.fd),
		uintptr(request.Number),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if errno != 0 {
		return "", newError("read", request, errno)
	}

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// Close releases the file descriptor, subsequent transfers fail with ErrClosed.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}
