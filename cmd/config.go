package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"go.uber.org/multierr"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/dialog"
	"github.com/stuttgart-things/workspaces/internal/templateform"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

const (
	defaultCatalogPath = "catalog.yaml"
	defaultRole        = workspace.RoleUser
)

// resolveCatalogPath returns the catalog path or URL from flag, environment, or default
func resolveCatalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("WORKSPACES_CATALOG"); env != "" {
		return env
	}
	return defaultCatalogPath
}

// resolveRole returns the role from flag, environment, or default
func resolveRole(flagValue string) (workspace.Role, error) {
	if flagValue == "" {
		flagValue = os.Getenv("WORKSPACES_ROLE")
	}
	if flagValue == "" {
		return defaultRole, nil
	}
	return workspace.ParseRole(flagValue)
}

// resolveInteractive decides the mode: explicit flags win, otherwise a TTY on stdin
func resolveInteractive(interactive, nonInteractive bool) bool {
	if nonInteractive {
		return false
	}
	if interactive {
		return true
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// loadCatalog reads the catalog and logs its data problems. Broken images
// only disable themselves, so problems are reported but not fatal.
func loadCatalog(ctx context.Context, path string, log logr.Logger) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if catalog.IsRemote(path) {
		c, err = catalog.NewClient().Fetch(ctx, path)
	} else {
		c, err = catalog.Load(path)
	}
	if err != nil {
		return nil, err
	}
	for _, problem := range multierr.Errors(catalog.Validate(c)) {
		log.Error(problem, "catalog problem", "path", path)
	}
	log.V(1).Info("catalog loaded", "path", path, "images", len(c.Images), "templates", len(c.Templates))
	return c, nil
}

func formOptions(c *catalog.Catalog, log logr.Logger) templateform.Options {
	return templateform.Options{
		Images:    c.Images,
		Intervals: c.Intervals,
		Logger:    log,
	}
}

// runDialog runs one dialog cycle and returns the submitted template, nil when cancelled
func runDialog(ctx context.Context, opts templateform.Options, prompter dialog.Prompter, mode templateform.Mode) (*workspace.Template, error) {
	var submitted *workspace.Template
	d := dialog.New(opts, prompter, func(t *workspace.Template) {
		submitted = t
	})
	if err := d.Run(ctx, mode); err != nil {
		return nil, err
	}
	return submitted, nil
}

// modifyMode returns the dialog mode for editing the catalog template with the given id
func modifyMode(c *catalog.Catalog, id string) (templateform.Mode, error) {
	entry := catalog.FindEntry(c, id)
	if entry == nil {
		return nil, fmt.Errorf("template %q not found in catalog", id)
	}
	return templateform.Modify{Template: entry.Template}, nil
}
