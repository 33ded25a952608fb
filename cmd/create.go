package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a workspace template",
	Long: `Opens the template dialog for a new template and writes the submitted
template as a manifest. Without a terminal the fields come from --param and
--params-file.`,
	Run: runCreate,
}

func init() {
	addParamFlags(createCmd)
	addModeFlags(createCmd)
	addOutputFlags(createCmd)

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) {
	config := &CreateConfig{
		CatalogPath:     resolveCatalogPath(catalogPath),
		ParamsFile:      paramsFile,
		InlineParamsRaw: inlineParams,
		Output:          outputConfigFromFlags(),
		Interactive:     resolveInteractive(interactive, nonInteractive),
	}

	log := newLogger()
	c, err := loadCatalog(cmd.Context(), config.CatalogPath, log)
	if err != nil {
		fmt.Println(failureStyle.Render(fmt.Sprintf("Error loading catalog: %v", err)))
		os.Exit(1)
	}

	if config.Interactive {
		fmt.Println(logo)
		err = runCreateInteractive(cmd.Context(), config, c, log)
	} else {
		err = runCreateNonInteractive(cmd.Context(), config, c, log, os.Stdout)
	}

	if err != nil {
		fmt.Println(failureStyle.Render(err.Error()))
		os.Exit(1)
	}
}
