package catalog

import "github.com/stuttgart-things/workspaces/internal/workspace"

// Catalog is the caller data file: images, resource bounds and templates
type Catalog struct {
	APIVersion string              `yaml:"apiVersion" json:"apiVersion"`
	Kind       string              `yaml:"kind" json:"kind"`
	Brand      string              `yaml:"brand,omitempty" json:"brand,omitempty"`
	Intervals  workspace.Intervals `yaml:"intervals" json:"intervals"`
	Images     []workspace.Image   `yaml:"images" json:"images"`
	Templates  []Entry             `yaml:"templates" json:"templates"`
}

// Entry is a template of the catalog together with its instances
type Entry struct {
	ID                 string `yaml:"id" json:"id"`
	workspace.Template `yaml:",inline"`
	Instances          []workspace.Instance `yaml:"instances" json:"instances"`
}

// Manifest is the document emitted for a submitted template
type Manifest struct {
	APIVersion string             `yaml:"apiVersion"`
	Kind       string             `yaml:"kind"`
	Metadata   ManifestMetadata   `yaml:"metadata"`
	Spec       workspace.Template `yaml:"spec"`
}

// ManifestMetadata names the manifest
type ManifestMetadata struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id,omitempty"`
	Disk string `yaml:"disk"`
}
