package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/stuttgart-things/workspaces/internal/images"
	"github.com/stuttgart-things/workspaces/internal/resources"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

const (
	DefaultAPIVersion = "workspaces.sthings.io/v1alpha1"
	DefaultKind       = "WorkspaceCatalog"
	ManifestKind      = "Template"
	DefaultBrand      = "Workspaces"
)

// Load reads and parses a catalog file (YAML or JSON)
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return decode(data, strings.ToLower(filepath.Ext(path)) == ".json")
}

func decode(data []byte, isJSON bool) (*Catalog, error) {
	var c Catalog
	if isJSON {
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing JSON catalog: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
	}

	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Kind == "" {
		c.Kind = DefaultKind
	}
	if c.Brand == "" {
		c.Brand = DefaultBrand
	}
	return &c, nil
}

// Validate reports every data-integrity problem of the catalog
func Validate(c *Catalog) error {
	var errs error

	bounds := []struct {
		name     string
		interval workspace.ResourceInterval
	}{
		{"cpu", c.Intervals.CPU},
		{"ram", c.Intervals.RAM},
		{"disk", c.Intervals.Disk},
	}
	for _, b := range bounds {
		if err := resources.Check(b.interval); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s %w", b.name, err))
		}
	}

	errs = multierr.Append(errs, images.NewCatalog(c.Images).Check())

	seen := make(map[string]bool, len(c.Templates))
	for _, e := range c.Templates {
		if e.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("template %q has no id", e.Name))
			continue
		}
		if seen[e.ID] {
			errs = multierr.Append(errs, fmt.Errorf("duplicate template id %q", e.ID))
		}
		seen[e.ID] = true

		instanceIDs := make(map[int]bool, len(e.Instances))
		for _, inst := range e.Instances {
			if instanceIDs[inst.ID] {
				errs = multierr.Append(errs, fmt.Errorf("template %q: duplicate instance id %d", e.ID, inst.ID))
			}
			instanceIDs[inst.ID] = true
		}
	}
	return errs
}

// Rows returns the table rows of the catalog in file order
func Rows(c *Catalog) []workspace.TemplateRow {
	rows := make([]workspace.TemplateRow, 0, len(c.Templates))
	for _, e := range c.Templates {
		rows = append(rows, workspace.TemplateRow{
			ID:        e.ID,
			Name:      e.Name,
			GUI:       e.GUI,
			Instances: e.Instances,
		})
	}
	return rows
}

// FindEntry returns a pointer to the template entry with the given id, or nil
func FindEntry(c *Catalog, id string) *Entry {
	for i, e := range c.Templates {
		if e.ID == id {
			return &c.Templates[i]
		}
	}
	return nil
}

// EncodeTemplate renders a submitted template as a YAML manifest.
// id is empty for newly created templates.
func EncodeTemplate(t workspace.Template, id string) ([]byte, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}

	m := Manifest{
		APIVersion: DefaultAPIVersion,
		Kind:       ManifestKind,
		Metadata: ManifestMetadata{
			Name: t.Name,
			ID:   id,
			Disk: t.DiskModeLabel(),
		},
		Spec: t,
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshalling template manifest: %w", err)
	}
	return out, nil
}

// RemoveEntry drops the template entry with the given id and reports whether it existed
func RemoveEntry(c *Catalog, id string) bool {
	for i, e := range c.Templates {
		if e.ID == id {
			c.Templates = append(c.Templates[:i], c.Templates[i+1:]...)
			return true
		}
	}
	return false
}
