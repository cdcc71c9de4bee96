//go:build linux

package ioctl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "tuxedo_io"))
	assert.ErrorIs(t, err, unix.ENOENT)
}

func TestDevice_NotATuxedoDevice(t *testing.T) {
	device, err := Open("/dev/null")
	require.NoError(t, err)
	defer device.Close()

	_, err = device.Read(UwHwCheck)
	var ioctlErr *Error
	require.ErrorAs(t, err, &ioctlErr)
	assert.Equal(t, "read", ioctlErr.Op)
	assert.Equal(t, UwHwCheck, ioctlErr.Request)
	assert.ErrorIs(t, err, unix.ENOTTY)
}

func TestDevice_Close(t *testing.T) {
	device, err := Open("/dev/null")
	require.NoError(t, err)

	require.NoError(t, device.Close())
	require.NoError(t, device.Close())

	_, err = device.Read(UwModelId)
	assert.ErrorIs(t, err, ErrClosed)
	err = device.Write(UwWriteFanAuto, 0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = device.ReadString(ModuleVersion, ModuleVersionLength)
	assert.ErrorIs(t, err, ErrClosed)
}
