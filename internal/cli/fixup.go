package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstone-cli/inkstone/internal/logger"
	"github.com/inkstone-cli/inkstone/internal/patch"
)

var (
	fixupFile  string
	fixupRules string
)

var fixupCmd = &cobra.Command{
	Use:   "fixup",
	Short: "Apply literal string replacements to a source file",
	Long: `Rewrites a text file in place using exact substring
replacement rules. A rule whose pattern is absent is reported and
skipped; the command still exits 0 so repeated runs are harmless.`,
	Args: cobra.NoArgs,
	RunE: runFixup,
}

func init() {
	fixupCmd.Flags().StringVarP(&fixupFile, "file", "f", "", "target file (default from config)")
	fixupCmd.Flags().StringVar(&fixupRules, "rules", "", "TOML rules file (default: built-in rules)")
	rootCmd.AddCommand(fixupCmd)
}

func runFixup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := cfg.Fixup.Target
	if fixupFile != "" {
		target = fixupFile
	}

	rulesPath := cfg.Fixup.Rules
	if fixupRules != "" {
		rulesPath = fixupRules
	}

	ruleSet, err := resolveRules(rulesPath)
	if err != nil {
		return err
	}

	logger.Section("fixup " + target)
	results, err := patch.ApplyFile(target, ruleSet)
	if err != nil {
		return fmt.Errorf("fixup failed: %w", err)
	}

	for _, res := range results {
		if res.Applied {
			cmd.Printf("%s %s\n", successStyle.Render("patched:"), res.Rule.Name)
		} else {
			cmd.Printf("%s %s\n", skippedStyle.Render("pattern not found:"), res.Rule.Name)
		}
	}
	return nil
}

func resolveRules(path string) ([]patch.Rule, error) {
	if path == "" {
		return patch.DefaultRules()
	}
	return patch.LoadRules(path)
}
