package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/templatestable"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

// listViews builds the rows shown to role, optionally with every row expanded
func listViews(c *catalog.Catalog, role workspace.Role, expand bool) []templatestable.RowView {
	tbl := templatestable.New(catalog.Rows(c), role, nil, nil)
	if expand {
		tbl.ExpandAll()
	}
	return tbl.Rows()
}

func printTable(w io.Writer, views []templatestable.RowView) {
	fmt.Fprintln(w, templatestable.Render(views))
}

func printJSON(w io.Writer, views []templatestable.RowView) error {
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
