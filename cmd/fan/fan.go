package fan

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/hal"
)

var fanIndex int

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().IntVarP(
		&fanIndex,
		"index", "i",
		0,
		"Index of the fan on the device, starting at 0",
	)
}

// openFanDevice opens the device and checks that the selected fan exists
func openFanDevice() (*hal.UniwillHardware, error) {
	device, err := global.OpenDevice()
	if err != nil {
		return nil, err
	}
	if fanIndex < 0 || fanIndex >= device.FanCount() {
		_ = device.Close()
		return nil, fmt.Errorf("fan %d: %w", fanIndex, hal.ErrDeviceNotAvailable)
	}
	return device, nil
}

// configuredFanId returns the id of the configured fan with the selected index
func configuredFanId() (string, bool) {
	for _, fan := range configuration.CurrentConfig.Fans {
		if fan.Index == fanIndex {
			return fan.ID, true
		}
	}
	return "", false
}
