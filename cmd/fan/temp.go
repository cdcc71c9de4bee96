package fan

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/internal/hal"
)

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Get the current temperature reported for a fan in °C",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := openFanDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		temp, err := device.GetFanTemperature(fanIndex)
		if errors.Is(err, hal.ErrDeviceNotAvailable) {
			return fmt.Errorf("no temperature available for fan %d: %w", fanIndex, err)
		} else if err != nil {
			return err
		}
		fmt.Printf("%d", temp)
		return nil
	},
}

func init() {
	Command.AddCommand(tempCmd)
}
