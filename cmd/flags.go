package cmd

import "github.com/spf13/cobra"

var (
	outputDir       string
	dryRun          bool
	filenamePattern string

	// Non-interactive mode flags
	paramsFile     string
	inlineParams   []string
	interactive    bool
	nonInteractive bool
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "/tmp", "Output directory for template manifests")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print output without writing files")
	cmd.Flags().StringVar(&filenamePattern, "filename-pattern", defaultFilenamePattern, "Pattern for output filenames ({{.name}}, {{.id}})")
}

func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Force interactive mode")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Force non-interactive mode")
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&paramsFile, "params-file", "f", "", "YAML/JSON file with template fields")
	cmd.Flags().StringSliceVarP(&inlineParams, "param", "p", nil, "Inline field (key=value, repeatable)")
}

func outputConfigFromFlags() OutputConfig {
	return OutputConfig{
		Directory:       outputDir,
		FilenamePattern: filenamePattern,
		DryRun:          dryRun,
	}
}
