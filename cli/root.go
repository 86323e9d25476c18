// Package cli implements the password-mint command-line interface.
//
// The command tree mirrors the derivation pipeline: `mint` derives a site
// password from a phrase prompted off-screen, `profile` manages the
// non-secret per-site generation options, and `version` prints build
// information. Secrets never reach argv, the profile file, or the verbose
// log.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fareedkhan-27/password-mint/logger"
)

var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "password-mint",
	Short: "Derive reproducible site passwords from a secret phrase",
	Long: `password-mint derives a high-entropy password from a secret phrase, a
site identifier, and a rotation version. Nothing is stored: the same
inputs always reproduce the same password, on any machine.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print derivation pipeline tracing to stderr (never includes secrets)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"profile directory (default ~/.password-mint)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
