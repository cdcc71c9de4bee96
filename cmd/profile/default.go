package profile

import (
	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/ui"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default performance profile of the device",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		profile, err := device.DefaultProfile()
		if err != nil {
			return err
		}
		ui.Printfln("%s", profile)
		return nil
	},
}

func init() {
	Command.AddCommand(defaultCmd)
}
