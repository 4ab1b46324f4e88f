// Package cli implements the stringver command line interface: scanning
// packages for Stringer types and generating verification test scaffolds.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stringver",
	Short: "Generate Stringer contract verification tests",
	Long: `stringver scans Go packages for struct types implementing the
fmt.Stringer contract and generates test scaffolds that verify their String
methods with the stringver library.

Generator defaults are read from .stringver.yml and can be overridden with
STRINGVER_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to the config file (default .stringver.yml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
