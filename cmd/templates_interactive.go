package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/dialog"
	"github.com/stuttgart-things/workspaces/internal/templatestable"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

const (
	actionToggle = "toggle"
	actionBack   = "back"
)

// runTemplatesInteractive lets the user browse the table until they quit.
// Edits and deletions only change the in-memory catalog; submitted edits are
// written as manifests.
func runTemplatesInteractive(ctx context.Context, config *TemplatesConfig, c *catalog.Catalog, role workspace.Role, log logr.Logger) error {
	var actionErr error

	var tbl *templatestable.Table
	tbl = templatestable.New(catalog.Rows(c), role,
		func(id string) {
			actionErr = editFromTable(ctx, config, c, id, log)
			tbl.SetRows(catalog.Rows(c))
		},
		func(id string) {
			actionErr = deleteFromTable(c, id)
			tbl.SetRows(catalog.Rows(c))
		},
	)

	for {
		fmt.Println(templatestable.Render(tbl.Rows()))

		id, err := selectRow(tbl.Rows())
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("row selection: %w", err)
		}
		if id == "" {
			return nil
		}

		var view templatestable.RowView
		for _, v := range tbl.Rows() {
			if v.ID == id {
				view = v
			}
		}

		action, err := selectAction(view)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return fmt.Errorf("action selection: %w", err)
		}

		actionErr = nil
		switch action {
		case actionToggle:
			err = tbl.Toggle(id)
		case string(templatestable.ActionEdit):
			err = tbl.Edit(id)
		case string(templatestable.ActionDelete):
			err = tbl.Delete(id)
		}
		if err == nil {
			err = actionErr
		}
		if err != nil {
			fmt.Println(failureStyle.Render(err.Error()))
		}
	}
}

func selectRow(views []templatestable.RowView) (string, error) {
	options := make([]huh.Option[string], 0, len(views)+1)
	for _, v := range views {
		label := fmt.Sprintf("%s (%s)", v.Name, v.ID)
		if v.Expandable {
			label += fmt.Sprintf(" [%d/%d running]", v.Summary.RunningCount, v.Summary.TotalCount)
		}
		options = append(options, huh.NewOption(label, v.ID))
	}
	options = append(options, huh.NewOption("Quit", ""))

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select template").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// selectAction offers only what the row allows: expanding when it has
// instances, edit and delete when the role carries them
func selectAction(view templatestable.RowView) (string, error) {
	var options []huh.Option[string]
	if view.Expandable {
		label := "Show instances"
		if view.Expanded {
			label = "Hide instances"
		}
		options = append(options, huh.NewOption(label, actionToggle))
	}
	for _, a := range view.Actions {
		switch a {
		case templatestable.ActionEdit:
			options = append(options, huh.NewOption("Edit template", string(a)))
		case templatestable.ActionDelete:
			options = append(options, huh.NewOption("Delete template", string(a)))
		}
	}
	options = append(options, huh.NewOption("Back", actionBack))

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%s (%s)", view.Name, view.ID)).
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func editFromTable(ctx context.Context, config *TemplatesConfig, c *catalog.Catalog, id string, log logr.Logger) error {
	mode, err := modifyMode(c, id)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n\n", sectionStyle.Render(fmt.Sprintf("Edit template %s", id)))

	prompter := dialog.HuhPrompter{Output: os.Stdout}
	submitted, err := runDialog(ctx, formOptions(c, log), prompter, mode)
	if err != nil {
		return err
	}
	if submitted == nil {
		fmt.Println("Cancelled.")
		return nil
	}

	result := newResult(id, *submitted)
	if result.Error != nil {
		return result.Error
	}
	if err := WriteResults(os.Stdout, []TemplateResult{result}, config.Output); err != nil {
		return err
	}

	catalog.FindEntry(c, id).Template = *submitted
	fmt.Println(rowSavedStyle.Render(fmt.Sprintf("Updated template: %s", id)))
	return nil
}

func deleteFromTable(c *catalog.Catalog, id string) error {
	entry := catalog.FindEntry(c, id)
	if entry == nil {
		return fmt.Errorf("template %q not found in catalog", id)
	}

	var confirm bool
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete template %q?", entry.Name)).
				Description(fmt.Sprintf("%d instance(s) were created from it", len(entry.Instances))).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&confirm),
		),
	)
	if err := confirmForm.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("confirmation form: %w", err)
	}
	if !confirm {
		fmt.Println("Cancelled.")
		return nil
	}

	catalog.RemoveEntry(c, id)
	fmt.Println(rowSavedStyle.Render(fmt.Sprintf("Deleted template: %s", id)))
	return nil
}
