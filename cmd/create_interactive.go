package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/dialog"
	"github.com/stuttgart-things/workspaces/internal/templateform"
)

// runCreateInteractive runs the create dialog in the terminal
func runCreateInteractive(ctx context.Context, config *CreateConfig, c *catalog.Catalog, log logr.Logger) error {
	fmt.Printf("%s\n\n", sectionStyle.Render("New template"))

	prompter := dialog.HuhPrompter{Output: os.Stdout}
	submitted, err := runDialog(ctx, formOptions(c, log), prompter, templateform.Create{})
	if err != nil {
		return err
	}
	if submitted == nil {
		fmt.Println("Cancelled.")
		return nil
	}

	result := newResult("", *submitted)
	if result.Error != nil {
		return result.Error
	}
	if err := WriteResults(os.Stdout, []TemplateResult{result}, config.Output); err != nil {
		return err
	}

	fmt.Println(rowSavedStyle.Render(fmt.Sprintf("\nCreated template: %s", submitted.Name)))
	return nil
}
