package config

import (
	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/ui"
	"github.com/uw2go/uw2go/internal/util"
)

var (
	initPath  string
	overwrite bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a default configuration file",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := util.WriteFileAtomic(initPath, configuration.DefaultConfig, overwrite); err != nil {
			return err
		}
		ui.Success("Configuration written to %s", initPath)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "output", "o", "/etc/uw2go/uw2go.yaml", "Path of the configuration file to write")
	initCmd.Flags().BoolVarP(&overwrite, "force", "f", false, "Overwrite an existing file")
	Command.AddCommand(initCmd)
}
