package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/stuttgart-things/workspaces/internal/images"
	"github.com/stuttgart-things/workspaces/internal/resources"
	"github.com/stuttgart-things/workspaces/internal/templateform"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

var (
	// ErrCancelled is returned by a Prompter when the user dismisses the dialog
	ErrCancelled = errors.New("dialog cancelled")

	// ErrAlreadyOpen is returned when opening a dialog that is already open
	ErrAlreadyOpen = errors.New("dialog already open")

	// ErrNotOpen is returned when closing or submitting a closed dialog
	ErrNotOpen = errors.New("dialog not open")
)

// Prompter collects user edits into an open form.
// problem is the reason the previous attempt could not be submitted, or nil.
type Prompter interface {
	Prompt(ctx context.Context, form *templateform.Controller, problem error) error
}

// Dialog owns visibility of the template dialog. The draft lives in a
// templateform.Controller created fresh on every Open; the only data leaving
// the dialog is what it passes to the submit callback.
type Dialog struct {
	opts     templateform.Options
	prompter Prompter
	onSubmit func(*workspace.Template)
	log      logr.Logger

	form      *templateform.Controller
	open      bool
	delivered bool
}

// New creates a closed dialog. onSubmit receives the template, or nil on cancel.
func New(opts templateform.Options, prompter Prompter, onSubmit func(*workspace.Template)) *Dialog {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Dialog{
		opts:     opts,
		prompter: prompter,
		onSubmit: onSubmit,
		log:      log.WithName("dialog"),
	}
}

// IsOpen reports whether the dialog is visible
func (d *Dialog) IsOpen() bool { return d.open }

// Form returns the form of the current cycle, nil before the first Open
func (d *Dialog) Form() *templateform.Controller { return d.form }

// Open shows the dialog with a fresh form
func (d *Dialog) Open(mode templateform.Mode) error {
	if d.open {
		return ErrAlreadyOpen
	}
	opts := d.opts
	opts.Logger = d.log
	form, err := templateform.New(mode, opts)
	if err != nil {
		return fmt.Errorf("opening %s dialog: %w", templateform.ModeName(mode), err)
	}
	d.form = form
	d.open = true
	d.delivered = false
	return nil
}

// Submit hands the draft to the caller and closes the dialog.
// A draft that fails validation keeps the dialog open.
func (d *Dialog) Submit() error {
	if !d.open {
		return ErrNotOpen
	}
	if err := d.form.Submit(d.deliver); err != nil {
		return err
	}
	d.open = false
	return nil
}

// Close dismisses the dialog without a template
func (d *Dialog) Close() error {
	if !d.open {
		return ErrNotOpen
	}
	d.open = false
	return d.form.Cancel(d.deliver)
}

// Run opens the dialog, prompts until the draft is submitted or the user
// cancels, and closes it. Cancellation is not an error.
func (d *Dialog) Run(ctx context.Context, mode templateform.Mode) error {
	if err := d.Open(mode); err != nil {
		return err
	}

	var problem error
	for {
		if err := ctx.Err(); err != nil {
			_ = d.Close()
			return nil
		}

		err := d.prompter.Prompt(ctx, d.form, problem)
		switch {
		case err == nil:
		case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled):
			return d.Close()
		case recoverable(err):
			d.log.V(1).Info("edit rejected", "reason", err.Error())
			problem = err
			continue
		default:
			_ = d.Close()
			return err
		}

		if err := d.Submit(); err != nil {
			if !recoverable(err) {
				_ = d.Close()
				return err
			}
			d.log.V(1).Info("submit refused", "reason", err.Error())
			problem = err
			continue
		}
		return nil
	}
}

func (d *Dialog) deliver(t *workspace.Template) {
	if d.delivered {
		return
	}
	d.delivered = true
	if d.onSubmit != nil {
		d.onSubmit(t)
	}
}

// recoverable errors are user mistakes the form can show and ask again for
func recoverable(err error) bool {
	if _, ok := templateform.FieldOf(err); ok {
		return true
	}
	return errors.Is(err, resources.ErrInvalidInput) ||
		errors.Is(err, images.ErrIncompatibleRuntimeKind) ||
		errors.Is(err, images.ErrUnknownImage)
}
