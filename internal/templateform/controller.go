package templateform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/stuttgart-things/workspaces/internal/images"
	"github.com/stuttgart-things/workspaces/internal/resources"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

// Options holds the caller data a form is opened with
type Options struct {
	Images    []workspace.Image
	Intervals workspace.Intervals
	Logger    logr.Logger
}

// Controller owns the draft template of one open dialog.
// A controller is single-use: after Submit or Cancel every call returns ErrClosed.
type Controller struct {
	mode      Mode
	catalog   *images.Catalog
	intervals workspace.Intervals
	draft     workspace.Template
	state     State
	log       logr.Logger
}

// New opens a form in the given mode
func New(mode Mode, opts Options) (*Controller, error) {
	if mode == nil {
		return nil, errors.New("form mode is required")
	}

	var errs error
	for _, r := range Resources {
		if err := resources.Check(intervalOf(opts.Intervals, r)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s %w", r, err))
		}
	}
	if errs != nil {
		return nil, errs
	}

	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	c := &Controller{
		mode:      mode,
		catalog:   images.NewCatalog(opts.Images),
		intervals: opts.Intervals,
		log:       log.WithValues("mode", ModeName(mode)),
	}

	for _, img := range c.catalog.Disabled() {
		c.log.Error(images.ErrNoSupportedRuntimeKind, "image disabled", "image", img.Name)
	}

	switch m := mode.(type) {
	case Modify:
		c.draft = m.Template
	case Create:
		img, err := c.catalog.First()
		if err != nil {
			return nil, err
		}
		kind, err := images.DefaultRuntimeKind(img, "")
		if err != nil {
			return nil, err
		}
		c.draft = workspace.Template{
			Image:       img.Name,
			RuntimeKind: kind,
			CPU:         opts.Intervals.CPU.Min,
			RAM:         opts.Intervals.RAM.Min,
			Disk:        opts.Intervals.Disk.Min,
		}
	default:
		return nil, fmt.Errorf("unsupported form mode %T", mode)
	}

	c.log.V(1).Info("form opened", "image", c.draft.Image, "runtimeKind", c.draft.RuntimeKind)
	return c, nil
}

// Mode returns the mode the form was opened in
func (c *Controller) Mode() Mode { return c.mode }

// State returns the lifecycle state
func (c *Controller) State() State { return c.state }

// Draft returns a copy of the current draft
func (c *Controller) Draft() workspace.Template { return c.draft }

// Intervals returns the resource bounds the form was opened with
func (c *Controller) Intervals() workspace.Intervals { return c.intervals }

// Interval returns the bound for r
func (c *Controller) Interval(r Resource) workspace.ResourceInterval {
	return intervalOf(c.intervals, r)
}

// ImageOptions returns the images that can be selected
func (c *Controller) ImageOptions() []workspace.Image {
	return c.catalog.Selectable()
}

// DisabledImages returns images hidden from selection because they declare no runtime kind
func (c *Controller) DisabledImages() []workspace.Image {
	return c.catalog.Disabled()
}

// RuntimeKindOptions returns the runtime kinds allowed for the current image
func (c *Controller) RuntimeKindOptions() []workspace.RuntimeKind {
	img, err := c.catalog.Lookup(c.draft.Image)
	if err != nil {
		return nil
	}
	kinds, err := images.RuntimeKindsFor(img)
	if err != nil {
		return nil
	}
	return kinds
}

// SetName updates the template name
func (c *Controller) SetName(name string) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	c.draft.Name = name
	return nil
}

// SetImage selects an image and resets the runtime kind if the new image does not support it
func (c *Controller) SetImage(name string) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	img, err := c.catalog.Lookup(name)
	if err != nil {
		return err
	}
	kind, err := images.DefaultRuntimeKind(img, c.draft.RuntimeKind)
	if err != nil {
		c.log.Error(err, "image rejected", "image", name)
		return err
	}
	if kind != c.draft.RuntimeKind {
		c.log.V(1).Info("runtime kind reset", "image", name, "previous", c.draft.RuntimeKind, "current", kind)
	}
	c.draft.Image = img.Name
	c.draft.RuntimeKind = kind
	return nil
}

// SetRuntimeKind selects a runtime kind; kinds unsupported by the current image are rejected
func (c *Controller) SetRuntimeKind(kind workspace.RuntimeKind) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	img, err := c.catalog.Lookup(c.draft.Image)
	if err != nil {
		return err
	}
	if !images.IsCompatible(img, kind) {
		return fmt.Errorf("%w: %s cannot run as %s", images.ErrIncompatibleRuntimeKind, img.Name, kind)
	}
	c.draft.RuntimeKind = kind
	return nil
}

// SetDiskMode toggles between persistent (true) and ephemeral disk
func (c *Controller) SetDiskMode(persistent bool) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	c.draft.DiskMode = persistent
	return nil
}

// SetGUI toggles the graphical environment
func (c *Controller) SetGUI(enabled bool) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	c.draft.GUI = enabled
	return nil
}

// SetResource stores value clamped into the bound of r and returns the stored value
func (c *Controller) SetResource(r Resource, value int) (int, error) {
	if c.state != StateEditing {
		return 0, ErrClosed
	}
	iv := c.Interval(r)
	clamped := resources.Clamp(value, iv)
	if clamped != value {
		c.log.V(1).Info("value clamped", "resource", r.String(), "requested", value, "stored", clamped)
	}
	*c.field(r) = clamped
	return clamped, nil
}

// SetResourceText parses raw input for r. Non-numeric input leaves the draft untouched.
func (c *Controller) SetResourceText(r Resource, raw string) (int, error) {
	if c.state != StateEditing {
		return 0, ErrClosed
	}
	v, err := resources.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", r, err)
	}
	return c.SetResource(r, v)
}

// Resource returns the draft value of r
func (c *Controller) Resource(r Resource) int {
	return *c.field(r)
}

// Validate reports every problem that blocks submission
func (c *Controller) Validate() error {
	var errs error
	if strings.TrimSpace(c.draft.Name) == "" {
		errs = multierr.Append(errs, validationErr("name", "must not be empty"))
	}

	img, err := c.catalog.Lookup(c.draft.Image)
	switch {
	case err != nil:
		errs = multierr.Append(errs, validationErr("image", "%q is not in the catalog", c.draft.Image))
	case len(img.RuntimeKinds) == 0:
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", images.ErrNoSupportedRuntimeKind, img.Name))
	case !images.IsCompatible(img, c.draft.RuntimeKind):
		errs = multierr.Append(errs, fmt.Errorf("%w: %s cannot run as %s", images.ErrIncompatibleRuntimeKind, img.Name, c.draft.RuntimeKind))
	}

	for _, r := range Resources {
		iv := c.Interval(r)
		if v := c.Resource(r); !resources.IsValid(v, iv) {
			errs = multierr.Append(errs, validationErr(r.String(), "%d outside [%d,%d]", v, iv.Min, iv.Max))
		}
	}
	return errs
}

// Submittable reports whether Submit would hand the draft to the caller
func (c *Controller) Submittable() bool {
	return c.state == StateEditing && c.Validate() == nil
}

// Submit validates the draft and passes it to onSubmit exactly once.
// On validation failure onSubmit is not called and the form stays open.
func (c *Controller) Submit(onSubmit func(*workspace.Template)) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	if err := c.Validate(); err != nil {
		c.log.V(1).Info("submit refused", "problems", len(multierr.Errors(err)))
		return err
	}
	c.state = StateSubmitted
	t := c.draft
	c.log.V(1).Info("form submitted", "template", t.Name)
	if onSubmit != nil {
		onSubmit(&t)
	}
	return nil
}

// Cancel discards the draft and tells onSubmit that no template was produced
func (c *Controller) Cancel(onSubmit func(*workspace.Template)) error {
	if c.state != StateEditing {
		return ErrClosed
	}
	c.state = StateCancelled
	c.log.V(1).Info("form cancelled")
	if onSubmit != nil {
		onSubmit(nil)
	}
	return nil
}

func (c *Controller) field(r Resource) *int {
	switch r {
	case ResourceRAM:
		return &c.draft.RAM
	case ResourceDisk:
		return &c.draft.Disk
	default:
		return &c.draft.CPU
	}
}

func intervalOf(iv workspace.Intervals, r Resource) workspace.ResourceInterval {
	switch r {
	case ResourceRAM:
		return iv.RAM
	case ResourceDisk:
		return iv.Disk
	default:
		return iv.CPU
	}
}
