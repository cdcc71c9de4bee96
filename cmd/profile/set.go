package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

var setCmd = &cobra.Command{
	Use:       "set <profile>",
	Short:     "Apply a performance profile",
	Long:      ``,
	Args:      cobra.ExactArgs(1),
	ValidArgs: hal.ProfileNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		if err := device.SetProfile(name); err != nil {
			return fmt.Errorf("set profile %s (options: %v): %w", name, hal.ProfileNames(), err)
		}

		if pers := global.Persistence(); pers != nil {
			profile, err := hal.ParseProfile(name)
			if err == nil {
				err = pers.SaveProfile(profile)
			}
			if err != nil {
				ui.Warning("Unable to persist profile %s: %v", name, err)
			}
		}

		ui.Success("Applied profile %s", name)
		return nil
	},
}

func init() {
	Command.AddCommand(setCmd)
}
