package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstone-cli/inkstone/internal/couplet"
)

var (
	coupletOutput string
	coupletVerify bool
)

var coupletCmd = &cobra.Command{
	Use:   "couplet",
	Short: "Generate the Spring Festival couplet document",
	Long: `Writes the couplet document (春联) to the working directory as
a Word .docx file with fixed festive formatting. The content and
output path can be overridden via the config file.`,
	Args: cobra.NoArgs,
	RunE: runCouplet,
}

func init() {
	coupletCmd.Flags().StringVarP(&coupletOutput, "output", "o", "", "output path (default from config)")
	coupletCmd.Flags().BoolVar(&coupletVerify, "verify", false, "read the document back and check its contents")
	rootCmd.AddCommand(coupletCmd)
}

func runCouplet(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := cfg.Couplet.Output
	if coupletOutput != "" {
		output = coupletOutput
	}

	doc := cfg.Document()
	if err := couplet.Generate(doc, output); err != nil {
		return fmt.Errorf("failed to generate couplet document: %w", err)
	}

	if coupletVerify {
		if err := couplet.VerifyFile(doc, output); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	cmd.Printf("%s %s\n", accentStyle.Render("Couplet document generated:"), output)
	return nil
}
