package fan

import (
	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/ui"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Hand control of all fans back to the device",
	Long:  `The device only supports automatic control for all fans at once, the --index flag is ignored`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		if err := device.SetFansAuto(); err != nil {
			return err
		}

		if pers := global.Persistence(); pers != nil {
			for _, fan := range configuration.CurrentConfig.Fans {
				if err := pers.DeleteFanSpeed(fan.ID); err != nil {
					ui.Warning("Unable to delete persisted speed of fan %s: %v", fan.ID, err)
				}
			}
		}

		ui.Success("Fans are controlled by the device")
		return nil
	},
}

func init() {
	Command.AddCommand(autoCmd)
}
