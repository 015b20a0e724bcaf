// Package cli wires the inkstone command tree. Each command lives in
// its own file and registers itself with the root command in init().
package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkstone-cli/inkstone/internal/config"
	"github.com/inkstone-cli/inkstone/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "inkstone",
	Short: "Small document and source-file maintenance tool",
	Long: `inkstone bundles two one-shot maintenance jobs:
generating the Spring Festival couplet document, and applying exact
literal string replacements to a source file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a TOML config file")
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	return config.Load(configFlag)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
