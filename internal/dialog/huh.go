package dialog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/multierr"

	"github.com/stuttgart-things/workspaces/internal/resources"
	"github.com/stuttgart-things/workspaces/internal/templateform"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

// HuhPrompter asks for template fields with an interactive terminal form
type HuhPrompter struct {
	Input      io.Reader
	Output     io.Writer
	Accessible bool
}

// fieldValues holds the raw form bindings for one prompt
type fieldValues struct {
	name     string
	image    string
	kind     workspace.RuntimeKind
	diskMode bool
	gui      bool
	cpu      string
	ram      string
	disk     string
	confirm  bool
}

func seedValues(form *templateform.Controller) *fieldValues {
	d := form.Draft()
	return &fieldValues{
		name:     d.Name,
		image:    d.Image,
		kind:     d.RuntimeKind,
		diskMode: d.DiskMode,
		gui:      d.GUI,
		cpu:      strconv.Itoa(d.CPU),
		ram:      strconv.Itoa(d.RAM),
		disk:     strconv.Itoa(d.Disk),
		confirm:  true,
	}
}

// apply writes the bindings into the form. The image goes first so that
// the runtime kind is checked against the newly selected image.
func (v *fieldValues) apply(form *templateform.Controller) error {
	var errs error
	errs = multierr.Append(errs, form.SetName(strings.TrimSpace(v.name)))
	if err := form.SetImage(v.image); err != nil {
		return multierr.Append(errs, err)
	}
	if v.kind != form.Draft().RuntimeKind {
		errs = multierr.Append(errs, form.SetRuntimeKind(v.kind))
	}
	errs = multierr.Append(errs, form.SetDiskMode(v.diskMode))
	errs = multierr.Append(errs, form.SetGUI(v.gui))

	raw := map[templateform.Resource]string{
		templateform.ResourceCPU:  v.cpu,
		templateform.ResourceRAM:  v.ram,
		templateform.ResourceDisk: v.disk,
	}
	for _, r := range templateform.Resources {
		if _, err := form.SetResourceText(r, raw[r]); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Prompt runs the form once and applies the answers
func (p HuhPrompter) Prompt(ctx context.Context, form *templateform.Controller, problem error) error {
	values := seedValues(form)

	if err := p.build(form, values, problem).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("template form: %w", err)
	}

	if !values.confirm {
		return ErrCancelled
	}
	return values.apply(form)
}

func (p HuhPrompter) build(form *templateform.Controller, v *fieldValues, problem error) *huh.Form {
	var groups []*huh.Group

	if problem != nil {
		groups = append(groups, huh.NewGroup(
			huh.NewNote().
				Title("Please fix the following").
				Description(problem.Error()),
		))
	}

	imageOptions := make([]huh.Option[string], 0)
	for _, img := range form.ImageOptions() {
		imageOptions = append(imageOptions, huh.NewOption(img.Name, img.Name))
	}

	imageDescription := "Base image of the template"
	if disabled := form.DisabledImages(); len(disabled) > 0 {
		names := make([]string, len(disabled))
		for i, img := range disabled {
			names[i] = img.Name
		}
		imageDescription += fmt.Sprintf(" (unavailable: %s)", strings.Join(names, ", "))
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewInput().
				Title("Template name *").
				Value(&v.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Image").
				Description(imageDescription).
				Options(imageOptions...).
				Value(&v.image),

			huh.NewSelect[workspace.RuntimeKind]().
				Title("Runtime").
				Description("Only the runtimes of the selected image are offered").
				OptionsFunc(func() []huh.Option[workspace.RuntimeKind] {
					return runtimeKindOptions(form.ImageOptions(), v.image)
				}, &v.image).
				Value(&v.kind),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Disk").
				Affirmative("Persistent").
				Negative("Ephemeral").
				Value(&v.diskMode),

			huh.NewConfirm().
				Title("Graphical interface").
				Affirmative("Enabled").
				Negative("Disabled").
				Value(&v.gui),
		),
		huh.NewGroup(
			resourceInput(form, templateform.ResourceCPU, "CPU cores", &v.cpu),
			resourceInput(form, templateform.ResourceRAM, "RAM (GB)", &v.ram),
			resourceInput(form, templateform.ResourceDisk, "Disk (GB)", &v.disk),
		),
	)

	title := "Create template?"
	if _, ok := form.Mode().(templateform.Modify); ok {
		title = "Save changes?"
	}
	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("Cancel").
			Value(&v.confirm),
	))

	f := huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(p.Accessible)

	var programOpts []tea.ProgramOption
	if p.Input != nil {
		programOpts = append(programOpts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(p.Output))
	}
	if len(programOpts) > 0 {
		f = f.WithProgramOptions(programOpts...)
	}
	return f
}

func resourceInput(form *templateform.Controller, r templateform.Resource, title string, value *string) huh.Field {
	iv := form.Interval(r)
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("Between %d and %d, other values are clamped", iv.Min, iv.Max)).
		Value(value).
		Validate(func(s string) error {
			if _, err := resources.Parse(s); err != nil {
				return fmt.Errorf("must be a whole number")
			}
			return nil
		})
}

func runtimeKindOptions(available []workspace.Image, image string) []huh.Option[workspace.RuntimeKind] {
	for _, img := range available {
		if img.Name != image {
			continue
		}
		opts := make([]huh.Option[workspace.RuntimeKind], len(img.RuntimeKinds))
		for i, k := range img.RuntimeKinds {
			opts[i] = huh.NewOption(string(k), k)
		}
		return opts
	}
	return nil
}
