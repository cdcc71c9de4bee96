package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/ui"
)

var modeCmd = &cobra.Command{
	Use:       "mode <on|off>",
	Short:     "Enable or disable the manual control mode of the device",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled := args[0] == "on"

		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		if err := device.SetEnableMode(enabled); err != nil {
			return fmt.Errorf("set mode %s: %w", args[0], err)
		}
		ui.Success("Mode %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
}
