package cmd

import (
	"github.com/praetorian-inc/outrider/internal/message"
	"github.com/praetorian-inc/outrider/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Outrider",
	Long:  `All software has versions. This is Outrider's`,
	Run: func(cmd *cobra.Command, args []string) {
		message.Info("%s", version.FullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
