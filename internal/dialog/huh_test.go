package dialog

import (
	"errors"
	"testing"

	"github.com/stuttgart-things/workspaces/internal/resources"
	"github.com/stuttgart-things/workspaces/internal/templateform"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

func TestSeedValues(t *testing.T) {
	form, err := templateform.New(templateform.Modify{Template: workspace.Template{
		Name: "Existing Template", Image: "Ubuntu", RuntimeKind: workspace.RuntimeKindContainer,
		GUI: true, CPU: 2, RAM: 16, Disk: 24,
	}}, storyOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	v := seedValues(form)
	if v.name != "Existing Template" || v.image != "Ubuntu" || v.kind != workspace.RuntimeKindContainer {
		t.Errorf("unexpected seed %+v", v)
	}
	if v.cpu != "2" || v.ram != "16" || v.disk != "24" || !v.gui || v.diskMode {
		t.Errorf("unexpected seed %+v", v)
	}
	if !v.confirm {
		t.Error("confirm should default to true")
	}
}

func TestApplyValues(t *testing.T) {
	form, err := templateform.New(templateform.Create{}, storyOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	v := seedValues(form)
	v.name = "  Ubuntu VM  "
	v.kind = workspace.RuntimeKindVM
	v.cpu = "9"
	v.ram = "8"
	v.disk = "0"
	v.gui = true

	if err := v.apply(form); err != nil {
		t.Fatalf("apply: %v", err)
	}
	d := form.Draft()
	if d.Name != "Ubuntu VM" || d.RuntimeKind != workspace.RuntimeKindVM || !d.GUI {
		t.Errorf("unexpected draft %+v", d)
	}
	if d.CPU != 4 || d.RAM != 8 || d.Disk != 1 {
		t.Errorf("expected clamped resources 4/8/1, got %d/%d/%d", d.CPU, d.RAM, d.Disk)
	}
}

func TestApplyValuesInvalidInput(t *testing.T) {
	form, err := templateform.New(templateform.Create{}, storyOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	v := seedValues(form)
	v.ram = "lots"
	err = v.apply(form)
	if !errors.Is(err, resources.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !recoverable(err) {
		t.Error("invalid input must be recoverable")
	}
	if form.Draft().RAM != 4 {
		t.Errorf("RAM must keep its previous value, got %d", form.Draft().RAM)
	}
}

func TestRuntimeKindOptions(t *testing.T) {
	opts := runtimeKindOptions(storyOptions().Images, "Windows")
	if len(opts) != 1 || opts[0].Value != workspace.RuntimeKindContainer {
		t.Errorf("unexpected options %v", opts)
	}
	if got := runtimeKindOptions(storyOptions().Images, "Nope"); got != nil {
		t.Errorf("expected no options, got %v", got)
	}
}
