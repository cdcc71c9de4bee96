package hal

import (
	"github.com/uw2go/uw2go/internal/ioctl"
)

// Open opens the tuxedo_io device at path and probes it for uniwill hardware.
func Open(path string) (*UniwillHardware, error) {
	device, err := ioctl.Open(path)
	if err != nil {
		return nil, err
	}
	return NewUniwillHardware(device)
}
