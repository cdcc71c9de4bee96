package fan

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

var speedCmd = &cobra.Command{
	Use:   "speed [percent]",
	Short: "Get/Set the current speed of a fan in percent ([0..100])",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := openFanDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		if len(args) == 0 {
			speed, err := device.GetFanSpeedPercent(fanIndex)
			if err != nil {
				return err
			}
			fmt.Printf("%d", speed)
			return nil
		}

		percent, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil || percent > hal.MaxFanSpeedPercent {
			return fmt.Errorf("speed %s: %w", args[0], hal.ErrInvalidArguments)
		}
		err = device.SetFanSpeedPercent(fanIndex, uint8(percent))
		if err != nil {
			return err
		}

		if id, ok := configuredFanId(); ok {
			if pers := global.Persistence(); pers != nil {
				if err := pers.SaveFanSpeed(id, uint8(percent)); err != nil {
					ui.Warning("Unable to persist speed of fan %s: %v", id, err)
				}
			}
		}
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
