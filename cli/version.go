package cli

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time via
// -ldflags "-X github.com/fareedkhan-27/password-mint/cli.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("password-mint version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
