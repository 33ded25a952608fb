package params

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFile_SingleTemplateYAML(t *testing.T) {
	content := `template: "0_2"
parameters:
  name: Existing Template
  cpu: 4
  diskMode: persistent
`
	tmpFile := createTempFile(t, "params-single.yaml", content)

	pf, err := ParseFile(tmpFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if len(pf.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(pf.Templates))
	}

	if pf.Templates[0].Template != "0_2" {
		t.Errorf("expected template id '0_2', got '%s'", pf.Templates[0].Template)
	}

	if pf.Templates[0].Parameters["name"] != "Existing Template" {
		t.Errorf("expected name 'Existing Template', got '%v'", pf.Templates[0].Parameters["name"])
	}

	if pf.Templates[0].Parameters["cpu"] != 4 {
		t.Errorf("expected cpu 4, got '%v'", pf.Templates[0].Parameters["cpu"])
	}
}

func TestParseFile_CreateWithoutTemplateID(t *testing.T) {
	content := `parameters:
  name: Ubuntu VM
  image: Ubuntu
`
	pf, err := ParseFile(createTempFile(t, "params.yaml", content))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if len(pf.Templates) != 1 || pf.Templates[0].Template != "" {
		t.Errorf("expected a single create entry, got %+v", pf.Templates)
	}
}

func TestParseFile_MultiTemplateYAML(t *testing.T) {
	content := `templates:
  - parameters:
      name: Ubuntu VM
      runtimeKind: VM

  - template: "0_4"
    parameters:
      ram: 8
`
	tmpFile := createTempFile(t, "params-multi.yaml", content)

	pf, err := ParseFile(tmpFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if len(pf.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(pf.Templates))
	}

	if pf.Templates[0].Template != "" {
		t.Errorf("expected first entry to create, got '%s'", pf.Templates[0].Template)
	}

	if pf.Templates[1].Template != "0_4" {
		t.Errorf("expected second template '0_4', got '%s'", pf.Templates[1].Template)
	}
}

func TestParseFile_JSON(t *testing.T) {
	content := `{
  "template": "0_1",
  "parameters": {
    "name": "Ubuntu VM",
    "cpu": 4
  }
}`
	tmpFile := createTempFile(t, "params.json", content)

	pf, err := ParseFile(tmpFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if len(pf.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(pf.Templates))
	}

	if pf.Templates[0].Parameters["cpu"] != float64(4) {
		t.Errorf("expected JSON cpu 4, got '%v'", pf.Templates[0].Parameters["cpu"])
	}
}

func TestParseFile_UnknownExtension(t *testing.T) {
	// YAML content with unknown extension - should try both parsers
	content := `template: "0_1"
parameters:
  name: Ubuntu VM
`
	tmpFile := createTempFile(t, "params.txt", content)

	pf, err := ParseFile(tmpFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if len(pf.Templates) != 1 {
		t.Errorf("expected 1 template, got %d", len(pf.Templates))
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile("/nonexistent/path/params.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestParseInlineParams(t *testing.T) {
	tests := []struct {
		name    string
		params  []string
		want    map[string]any
		wantErr bool
	}{
		{
			name:   "single param",
			params: []string{"name=Ubuntu VM"},
			want:   map[string]any{"name": "Ubuntu VM"},
		},
		{
			name:   "multiple params",
			params: []string{"name=Ubuntu VM", "cpu=4", "runtimeKind=VM"},
			want:   map[string]any{"name": "Ubuntu VM", "cpu": "4", "runtimeKind": "VM"},
		},
		{
			name:   "value with equals sign",
			params: []string{"name=a=b"},
			want:   map[string]any{"name": "a=b"},
		},
		{
			name:   "empty value",
			params: []string{"name="},
			want:   map[string]any{"name": ""},
		},
		{
			name:    "invalid format",
			params:  []string{"name"},
			wantErr: true,
		},
		{
			name:   "surrounding whitespace",
			params: []string{" cpu = 4 ", "name= Ubuntu VM "},
			want:   map[string]any{"cpu": "4", "name": "Ubuntu VM"},
		},
		{
			name:    "unknown key",
			params:  []string{"memory=8Gi"},
			wantErr: true,
		},
		{
			name:    "empty key",
			params:  []string{"=4"},
			wantErr: true,
		},
		{
			name:   "empty slice",
			params: []string{},
			want:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInlineParams(tt.params)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseInlineParams() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				for k, v := range tt.want {
					if got[k] != v {
						t.Errorf("ParseInlineParams()[%s] = %v, want %v", k, got[k], v)
					}
				}
			}
		})
	}
}

func TestParseInlineParams_UnknownKey(t *testing.T) {
	_, err := ParseInlineParams([]string{"name=ok", "memory=8Gi"})
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}
}

func TestParseFile_UnknownKey(t *testing.T) {
	content := `templates:
  - parameters:
      name: Ubuntu VM
  - template: "0_4"
    parameters:
      memory: 8Gi
`
	_, err := ParseFile(createTempFile(t, "params.yaml", content))
	if !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("expected ErrUnknownParameter, got %v", err)
	}
	if !strings.Contains(err.Error(), "templates[1]") {
		t.Errorf("expected the entry index in %q", err)
	}
}

func TestMergeParams(t *testing.T) {
	fileParams := map[string]any{
		"name":  "file-name",
		"cpu":   4,
		"image": "Ubuntu",
	}

	inlineParams := map[string]any{
		"cpu": "2",
		"gui": "true",
	}

	result := MergeParams(fileParams, inlineParams)

	// Check that inline params override file params
	if result["cpu"] != "2" {
		t.Errorf("expected cpu=2, got %v", result["cpu"])
	}

	// Check that file-only params are preserved
	if result["name"] != "file-name" {
		t.Errorf("expected name='file-name', got %v", result["name"])
	}

	if result["image"] != "Ubuntu" {
		t.Errorf("expected image='Ubuntu', got %v", result["image"])
	}

	// Check that inline-only params are added
	if result["gui"] != "true" {
		t.Errorf("expected gui='true', got %v", result["gui"])
	}
}

func TestParameterFile_Normalize(t *testing.T) {
	pf := &ParameterFile{
		Template: "0_1",
		Parameters: map[string]any{
			"name": "Ubuntu VM",
		},
	}

	pf.Normalize()

	if len(pf.Templates) != 1 {
		t.Fatalf("expected 1 template after normalize, got %d", len(pf.Templates))
	}

	if pf.Templates[0].Template != "0_1" {
		t.Errorf("expected template id '0_1', got '%s'", pf.Templates[0].Template)
	}
}

func TestParameterFile_Normalize_NoOp(t *testing.T) {
	// Already in multi-template format - normalize should be a no-op
	pf := &ParameterFile{
		Templates: []TemplateParams{
			{Template: "0_1", Parameters: map[string]any{"cpu": 2}},
		},
	}

	pf.Normalize()

	if len(pf.Templates) != 1 {
		t.Errorf("expected 1 template after normalize, got %d", len(pf.Templates))
	}

	empty := &ParameterFile{}
	empty.Normalize()
	if len(empty.Templates) != 0 {
		t.Errorf("expected no templates for an empty file, got %d", len(empty.Templates))
	}
}

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, name)
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return tmpFile
}
