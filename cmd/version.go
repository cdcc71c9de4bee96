package cmd

import (
	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/internal/ui"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of uw2go",
	Long:  `All software has versions. This is uw2go's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
