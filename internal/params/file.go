package params

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ParseFile reads a template parameter file (YAML or JSON) and returns it
// normalized to the list form. Entries naming a field the template form
// does not know are rejected before any dialog runs.
func ParseFile(path string) (*ParameterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}

	pf, err := decodeFile(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, err
	}
	pf.Normalize()

	var errs error
	for i, entry := range pf.Templates {
		for _, key := range unknownKeys(entry.Parameters) {
			errs = multierr.Append(errs, fmt.Errorf("templates[%d]: %w", i, unknownParameter(key)))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return pf, nil
}

func decodeFile(data []byte, ext string) (*ParameterFile, error) {
	var pf ParameterFile
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("parsing JSON params: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("parsing YAML params: %w", err)
		}
	default:
		// JSON is valid YAML, so only fall back when YAML fails
		if err := yaml.Unmarshal(data, &pf); err != nil {
			if jsonErr := json.Unmarshal(data, &pf); jsonErr != nil {
				return nil, fmt.Errorf("parsing params file as YAML or JSON: %w", err)
			}
		}
	}
	return &pf, nil
}

// ParseInlineParams turns --param key=value flags into template field
// values. Keys and values are trimmed; a key outside Keys is an
// ErrUnknownParameter.
func ParseInlineParams(flags []string) (map[string]any, error) {
	result := make(map[string]any, len(flags))

	for _, p := range flags {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param format: %s (expected key=value)", p)
		}
		if !slices.Contains(Keys, key) {
			return nil, unknownParameter(key)
		}
		result[key] = strings.TrimSpace(value)
	}

	return result, nil
}

// MergeParams overlays the inline values on the file values
func MergeParams(fileParams, inlineParams map[string]any) map[string]any {
	result := make(map[string]any, len(fileParams)+len(inlineParams))
	maps.Copy(result, fileParams)
	maps.Copy(result, inlineParams)
	return result
}

func unknownKeys(values map[string]any) []string {
	var unknown []string
	for k := range values {
		if !slices.Contains(Keys, k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

func unknownParameter(key string) error {
	return fmt.Errorf("%w %q (expected one of %s)", ErrUnknownParameter, key, strings.Join(Keys, ", "))
}
