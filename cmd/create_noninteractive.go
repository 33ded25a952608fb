package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/params"
	"github.com/stuttgart-things/workspaces/internal/templateform"
)

// runCreateNonInteractive fills the dialog from parameters. Each entry of the
// params file creates a template, or modifies one when it names a template id.
func runCreateNonInteractive(ctx context.Context, config *CreateConfig, c *catalog.Catalog, log logr.Logger, w io.Writer) error {
	entries, err := collectParams(config)
	if err != nil {
		return err
	}

	results := make([]TemplateResult, 0, len(entries))
	for _, tp := range entries {
		label := tp.Template
		if label == "" {
			label = "new template"
		}
		fmt.Fprintf(w, "Submitting %s...\n", label)

		result := submitParams(ctx, c, tp, log)
		if result.Error != nil {
			fmt.Fprintf(w, "  ERROR: %v\n", result.Error)
		} else {
			fmt.Fprintf(w, "  Submitted %s\n", result.Template.Name)
		}
		results = append(results, result)
	}

	if err := WriteResults(w, results, config.Output); err != nil {
		return err
	}

	if failed := failedCount(results); failed > 0 {
		return fmt.Errorf("%d of %d templates failed", failed, len(results))
	}
	return nil
}

// collectParams merges the params file entries with the inline params.
// Inline params apply to every entry and win over file values.
func collectParams(config *CreateConfig) ([]params.TemplateParams, error) {
	if config.ParamsFile == "" && len(config.InlineParamsRaw) == 0 {
		return nil, fmt.Errorf("non-interactive mode requires --params-file or --param")
	}

	var entries []params.TemplateParams
	if config.ParamsFile != "" {
		pf, err := params.ParseFile(config.ParamsFile)
		if err != nil {
			return nil, err
		}
		entries = pf.Templates
	}

	inline, err := params.ParseInlineParams(config.InlineParamsRaw)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		entries = []params.TemplateParams{{Parameters: inline}}
	}
	if config.TemplateID != "" {
		if err := checkEditEntries(entries, config.TemplateID); err != nil {
			return nil, err
		}
	}
	for i := range entries {
		if config.TemplateID != "" {
			entries[i].Template = config.TemplateID
		}
		entries[i].Parameters = params.MergeParams(entries[i].Parameters, inline)
	}
	return entries, nil
}

// checkEditEntries makes sure a params file given to edit describes only the
// template being edited.
func checkEditEntries(entries []params.TemplateParams, id string) error {
	if len(entries) > 1 {
		return fmt.Errorf("editing %q takes a single params entry, the file has %d", id, len(entries))
	}
	if other := entries[0].Template; other != "" && other != id {
		return fmt.Errorf("params file targets template %q but %q is being edited", other, id)
	}
	return nil
}

func submitParams(ctx context.Context, c *catalog.Catalog, tp params.TemplateParams, log logr.Logger) TemplateResult {
	var mode templateform.Mode = templateform.Create{}
	if tp.Template != "" {
		m, err := modifyMode(c, tp.Template)
		if err != nil {
			return TemplateResult{ID: tp.Template, Error: err}
		}
		mode = m
	}

	submitted, err := runDialog(ctx, formOptions(c, log), params.Prompter{Values: tp.Parameters}, mode)
	if err != nil {
		return TemplateResult{ID: tp.Template, Error: err}
	}
	if submitted == nil {
		return TemplateResult{ID: tp.Template, Error: fmt.Errorf("template dialog was cancelled")}
	}
	return newResult(tp.Template, *submitted)
}
