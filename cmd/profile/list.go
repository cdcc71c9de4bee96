package profile

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the performance profiles supported by the device",
	Long:  `The profile last applied by uw2go is marked with '*'`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		profiles, err := device.AvailableProfiles()
		if err != nil {
			return err
		}

		current := ""
		if pers := global.Persistence(); pers != nil {
			profile, err := pers.LoadProfile()
			if err == nil {
				current = profile.String()
			} else if !errors.Is(err, os.ErrNotExist) {
				ui.Warning("Unable to load persisted profile: %v", err)
			}
		}

		for _, name := range profiles {
			marker := " "
			if name == current {
				marker = "*"
			}
			ui.Printfln("%s %s", marker, name)
		}
		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}
