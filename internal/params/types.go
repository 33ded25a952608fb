package params

// ParameterFile supports both single and multi-template formats.
// Template is the id of a catalog template to modify; empty means create.
type ParameterFile struct {
	// Single template format
	Template   string         `yaml:"template" json:"template"`
	Parameters map[string]any `yaml:"parameters" json:"parameters"`

	// Multi-template format
	Templates []TemplateParams `yaml:"templates" json:"templates"`
}

// TemplateParams holds the field values for a single template
type TemplateParams struct {
	Template   string         `yaml:"template" json:"template"`
	Parameters map[string]any `yaml:"parameters" json:"parameters"`
}

// Normalize converts single-template format to multi-template format
func (pf *ParameterFile) Normalize() {
	if len(pf.Templates) > 0 {
		return
	}
	if pf.Template != "" || len(pf.Parameters) > 0 {
		pf.Templates = []TemplateParams{{
			Template:   pf.Template,
			Parameters: pf.Parameters,
		}}
	}
}
