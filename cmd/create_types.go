package cmd

// CreateConfig holds configuration for the create and edit commands
type CreateConfig struct {
	CatalogPath string

	// Template to modify, empty for create
	TemplateID string

	// Parameter input
	ParamsFile      string
	InlineParamsRaw []string

	// Output configuration
	Output OutputConfig

	// Mode control
	Interactive bool
}
