package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/templatestable"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

var editRole string

var editCmd = &cobra.Command{
	Use:   "edit <template-id>",
	Short: "Edit a workspace template",
	Long: `Opens the template dialog seeded with an existing template and writes the
submitted template as a manifest. Only managers may edit templates.

A params file passed with --params-file must hold a single entry. Its
template id may be omitted; when present it must match the edited id.`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editRole, "role", "", "Viewer role: manager or user (default: $WORKSPACES_ROLE or user)")
	addParamFlags(editCmd)
	addModeFlags(editCmd)
	addOutputFlags(editCmd)

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	config := &CreateConfig{
		CatalogPath:     resolveCatalogPath(catalogPath),
		TemplateID:      args[0],
		ParamsFile:      paramsFile,
		InlineParamsRaw: inlineParams,
		Output:          outputConfigFromFlags(),
		Interactive:     resolveInteractive(interactive, nonInteractive),
	}

	role, err := resolveRole(editRole)
	if err != nil {
		fmt.Println(failureStyle.Render(err.Error()))
		os.Exit(1)
	}

	log := newLogger()
	c, err := loadCatalog(cmd.Context(), config.CatalogPath, log)
	if err != nil {
		fmt.Println(failureStyle.Render(fmt.Sprintf("Error loading catalog: %v", err)))
		os.Exit(1)
	}

	if config.Interactive {
		fmt.Println(logo)
	}
	if err := runEditForRole(cmd.Context(), config, c, role, log, os.Stdout); err != nil {
		fmt.Println(failureStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// runEditForRole goes through the templates table so the role decides
// whether the edit action exists at all
func runEditForRole(ctx context.Context, config *CreateConfig, c *catalog.Catalog, role workspace.Role, log logr.Logger, w io.Writer) error {
	var editErr error
	tbl := templatestable.New(catalog.Rows(c), role, func(id string) {
		if config.Interactive {
			editErr = editFromTable(ctx, &TemplatesConfig{CatalogPath: config.CatalogPath, Output: config.Output}, c, id, log)
			return
		}
		editErr = runCreateNonInteractive(ctx, config, c, log, w)
	}, nil)

	if err := tbl.Edit(config.TemplateID); err != nil {
		return fmt.Errorf("editing %s: %w", config.TemplateID, err)
	}
	return editErr
}
