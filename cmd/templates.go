package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	templatesRole   string
	templatesExpand bool
	templatesOutput string
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"tmpl"},
	Short:   "Browse the templates of the catalog",
	Long: `Shows the templates table. Interactive mode lets you expand rows to see
their instances and, for managers, edit or delete a template.`,
	Run: runTemplates,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates with their instance status",
	Run:   runTemplatesList,
}

func init() {
	templatesCmd.PersistentFlags().StringVar(&templatesRole, "role", "", "Viewer role: manager or user (default: $WORKSPACES_ROLE or user)")
	addModeFlags(templatesCmd)
	addOutputFlags(templatesCmd)

	templatesListCmd.Flags().BoolVar(&templatesExpand, "expand", false, "Show the instances of every template")
	templatesListCmd.Flags().StringVarP(&templatesOutput, "output", "o", "table", "Output format (table, json)")

	templatesCmd.AddCommand(templatesListCmd)
	rootCmd.AddCommand(templatesCmd)
}

// TemplatesConfig holds configuration for the templates commands
type TemplatesConfig struct {
	CatalogPath string
	Output      OutputConfig
}

func runTemplates(cmd *cobra.Command, args []string) {
	if !resolveInteractive(interactive, nonInteractive) {
		runTemplatesList(cmd, args)
		return
	}

	fmt.Println(logo)

	log := newLogger()
	role, err := resolveRole(templatesRole)
	if err != nil {
		fmt.Println(failureStyle.Render(err.Error()))
		os.Exit(1)
	}

	path := resolveCatalogPath(catalogPath)
	c, err := loadCatalog(cmd.Context(), path, log)
	if err != nil {
		fmt.Println(failureStyle.Render(fmt.Sprintf("Error loading catalog: %v", err)))
		os.Exit(1)
	}

	config := &TemplatesConfig{
		CatalogPath: path,
		Output:      outputConfigFromFlags(),
	}
	if err := runTemplatesInteractive(cmd.Context(), config, c, role, log); err != nil {
		fmt.Println(failureStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func runTemplatesList(cmd *cobra.Command, args []string) {
	role, err := resolveRole(templatesRole)
	if err != nil {
		fmt.Println(failureStyle.Render(err.Error()))
		os.Exit(1)
	}

	c, err := loadCatalog(cmd.Context(), resolveCatalogPath(catalogPath), newLogger())
	if err != nil {
		fmt.Println(failureStyle.Render(fmt.Sprintf("Error loading catalog: %v", err)))
		os.Exit(1)
	}

	if len(c.Templates) == 0 {
		fmt.Println("No templates found.")
		return
	}

	views := listViews(c, role, templatesExpand)
	switch templatesOutput {
	case "json":
		if err := printJSON(os.Stdout, views); err != nil {
			fmt.Println(failureStyle.Render(err.Error()))
			os.Exit(1)
		}
	default:
		printTable(os.Stdout, views)
	}
}
