package params

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/stuttgart-things/workspaces/internal/resources"
	"github.com/stuttgart-things/workspaces/internal/templateform"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

var (
	// ErrUnknownParameter is returned for keys that do not name a template field
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrRejected is returned when the form refuses the supplied values
	ErrRejected = errors.New("parameters rejected")
)

// Keys lists the accepted parameter names in the order they are applied.
// The image precedes the runtime kind so the kind is checked against it.
var Keys = []string{"name", "image", "runtimeKind", "diskMode", "gui", "cpu", "ram", "disk"}

// Prompter fills the template form from a fixed set of values without
// asking anyone. A second prompt means the values were refused.
type Prompter struct {
	Values map[string]any
}

// Prompt applies the values once; any reported problem ends the dialog
func (p Prompter) Prompt(_ context.Context, form *templateform.Controller, problem error) error {
	if problem != nil {
		return fmt.Errorf("%w: %v", ErrRejected, problem)
	}
	return Apply(form, p.Values)
}

// Apply writes the values into the form. Unknown keys are reported and the
// remaining fields are still applied.
func Apply(form *templateform.Controller, values map[string]any) error {
	var errs error

	for _, k := range unknownKeys(values) {
		errs = multierr.Append(errs, unknownParameter(k))
	}

	for _, key := range Keys {
		v, ok := values[key]
		if !ok {
			continue
		}
		if err := applyOne(form, key, v); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errs
}

func applyOne(form *templateform.Controller, key string, v any) error {
	switch key {
	case "name":
		return form.SetName(strings.TrimSpace(fmt.Sprint(v)))
	case "image":
		return form.SetImage(fmt.Sprint(v))
	case "runtimeKind":
		kind, err := workspace.ParseRuntimeKind(fmt.Sprint(v))
		if err != nil {
			return err
		}
		return form.SetRuntimeKind(kind)
	case "diskMode":
		persistent, err := toDiskMode(v)
		if err != nil {
			return err
		}
		return form.SetDiskMode(persistent)
	case "gui":
		enabled, err := toBool(v)
		if err != nil {
			return err
		}
		return form.SetGUI(enabled)
	case "cpu":
		return setResource(form, templateform.ResourceCPU, v)
	case "ram":
		return setResource(form, templateform.ResourceRAM, v)
	case "disk":
		return setResource(form, templateform.ResourceDisk, v)
	}
	return fmt.Errorf("%w %q", ErrUnknownParameter, key)
}

func setResource(form *templateform.Controller, r templateform.Resource, v any) error {
	switch n := v.(type) {
	case int:
		_, err := form.SetResource(r, n)
		return err
	case float64:
		// JSON numbers
		i, err := resources.FromFloat(n)
		if err != nil {
			return err
		}
		_, err = form.SetResource(r, i)
		return err
	case string:
		// Apply names the field, so the form's own prefix is skipped
		i, err := resources.Parse(n)
		if err != nil {
			return err
		}
		_, err = form.SetResource(r, i)
		return err
	}
	return fmt.Errorf("%w: %v is not a number", resources.ErrInvalidInput, v)
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", resources.ErrInvalidInput, b)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("%w: %v is not a boolean", resources.ErrInvalidInput, v)
}

// toDiskMode accepts a boolean or the labels persistent and ephemeral
func toDiskMode(v any) (bool, error) {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "persistent":
			return true, nil
		case "ephemeral":
			return false, nil
		}
	}
	return toBool(v)
}
