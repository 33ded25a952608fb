package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

const defaultFilenamePattern = "{{.name}}-template.yaml"

// OutputConfig holds configuration for file output
type OutputConfig struct {
	Directory       string
	FilenamePattern string
	DryRun          bool
}

// FileInfo holds information used for filename generation
type FileInfo struct {
	Name string
	ID   string
}

// TemplateResult is a submitted template ready to be written
type TemplateResult struct {
	ID         string
	Template   workspace.Template
	Content    []byte
	OutputPath string
	Error      error
}

// newResult encodes a submitted template. id is empty for new templates.
func newResult(id string, t workspace.Template) TemplateResult {
	content, err := catalog.EncodeTemplate(t, id)
	return TemplateResult{
		ID:       id,
		Template: t,
		Content:  content,
		Error:    err,
	}
}

// GenerateFilename creates a filename from pattern and file info
func GenerateFilename(pattern string, info FileInfo) (string, error) {
	tmpl, err := template.New("filename").Option("missingkey=error").Parse(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid filename pattern: %w", err)
	}

	data := map[string]string{
		"name": slug(info.Name),
		"id":   info.ID,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing filename template: %w", err)
	}

	return buf.String(), nil
}

// slug turns a display name into a file name fragment
func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '.')
	})
	if len(fields) == 0 {
		return "template"
	}
	return strings.Join(fields, "-")
}

// WriteResults writes template manifests based on the output configuration
func WriteResults(w io.Writer, results []TemplateResult, config OutputConfig) error {
	if config.DryRun {
		return printDryRun(w, results, config)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(config.Directory, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i, r := range results {
		if r.Error != nil {
			continue // Skip failed templates
		}

		path, err := outputPath(r, config)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, r.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		results[i].OutputPath = path
		fmt.Fprintf(w, "Saved: %s\n", path)
	}
	return nil
}

// printDryRun displays what would be written without actually writing files
func printDryRun(w io.Writer, results []TemplateResult, config OutputConfig) error {
	fmt.Fprintln(w, "\n=== DRY RUN - No files written ===")

	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(w, "# Skipping failed template: %s - %v\n", r.Template.Name, r.Error)
			continue
		}

		path, err := outputPath(r, config)
		if err != nil {
			path = filepath.Join(config.Directory, slug(r.Template.Name)+".yaml")
		}

		fmt.Fprintf(w, "Would write: %s\n", path)
		fmt.Fprintln(w, manifestBox.Render(strings.TrimSpace(string(r.Content))))
		fmt.Fprintln(w)
	}
	return nil
}

func outputPath(r TemplateResult, config OutputConfig) (string, error) {
	pattern := config.FilenamePattern
	if pattern == "" {
		pattern = defaultFilenamePattern
	}
	filename, err := GenerateFilename(pattern, FileInfo{Name: r.Template.Name, ID: r.ID})
	if err != nil {
		return "", err
	}
	return filepath.Join(config.Directory, filename), nil
}

// failedCount returns the number of templates that could not be encoded
func failedCount(results []TemplateResult) int {
	count := 0
	for _, r := range results {
		if r.Error != nil {
			count++
		}
	}
	return count
}
