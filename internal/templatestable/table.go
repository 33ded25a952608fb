package templatestable

import (
	"errors"
	"fmt"
	"slices"

	"github.com/stuttgart-things/workspaces/internal/instances"
	"github.com/stuttgart-things/workspaces/internal/workspace"
)

var (
	// ErrNotPermitted is returned when a role without edit/delete rights triggers an action
	ErrNotPermitted = errors.New("action not permitted for role")

	// ErrUnknownRow is returned for row ids that are not in the table
	ErrUnknownRow = errors.New("unknown template row")

	// ErrNotExpandable is returned when expanding a row without instances
	ErrNotExpandable = errors.New("template row has no instances")
)

// Action is a row affordance
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// InstanceView is an instance line under an expanded row
type InstanceView struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	IP    string          `json:"ip"`
	Phase instances.Phase `json:"phase"`
}

// RowView is everything needed to draw one template row
type RowView struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	GUI        bool              `json:"gui"`
	Expandable bool              `json:"expandable"`
	Expanded   bool              `json:"expanded"`
	Summary    instances.Summary `json:"summary"`
	Instances  []InstanceView    `json:"instances,omitempty"`
	Actions    []Action          `json:"actions,omitempty"`
}

// Table exposes template rows to a role. Row data stays owned by the caller:
// edit and delete only invoke the caller's callbacks with the row id.
type Table struct {
	rows     []workspace.TemplateRow
	role     workspace.Role
	onEdit   func(id string)
	onDelete func(id string)
	expanded map[string]bool
}

// New creates a table for role; onEdit and onDelete receive row ids
func New(rows []workspace.TemplateRow, role workspace.Role, onEdit, onDelete func(id string)) *Table {
	return &Table{
		rows:     rows,
		role:     role,
		onEdit:   onEdit,
		onDelete: onDelete,
		expanded: make(map[string]bool),
	}
}

// SetRows replaces the rows with a fresh caller-supplied list.
// Expansion state is kept by id.
func (t *Table) SetRows(rows []workspace.TemplateRow) {
	t.rows = rows
}

// Role returns the role the table renders for
func (t *Table) Role() workspace.Role { return t.role }

// Actions returns the row affordances available to the role
func (t *Table) Actions() []Action {
	if t.role != workspace.RoleManager {
		return nil
	}
	return []Action{ActionEdit, ActionDelete}
}

// Rows builds one view per row in caller order
func (t *Table) Rows() []RowView {
	views := make([]RowView, 0, len(t.rows))
	for _, row := range t.rows {
		views = append(views, t.view(row))
	}
	return views
}

func (t *Table) view(row workspace.TemplateRow) RowView {
	v := RowView{
		ID:         row.ID,
		Name:       row.Name,
		GUI:        row.GUI,
		Expandable: instances.IsExpandable(row),
		Summary:    instances.StatusSummary(row),
		Actions:    t.Actions(),
	}
	// a stale expansion of a row that lost its instances is ignored
	v.Expanded = v.Expandable && t.expanded[row.ID]
	if v.Expanded {
		v.Instances = make([]InstanceView, 0, len(row.Instances))
		for _, inst := range row.Instances {
			v.Instances = append(v.Instances, InstanceView{
				ID:    inst.ID,
				Name:  inst.Name,
				IP:    inst.IP,
				Phase: instances.PhaseOf(inst),
			})
		}
	}
	return v
}

// Toggle expands or collapses a row
func (t *Table) Toggle(id string) error {
	row, err := t.find(id)
	if err != nil {
		return err
	}
	if !instances.IsExpandable(row) {
		return fmt.Errorf("%w: %s", ErrNotExpandable, id)
	}
	t.expanded[id] = !t.expanded[id]
	return nil
}

// ExpandAll expands every row that has instances
func (t *Table) ExpandAll() {
	for _, row := range t.rows {
		if instances.IsExpandable(row) {
			t.expanded[row.ID] = true
		}
	}
}

// Edit asks the caller to edit the row
func (t *Table) Edit(id string) error {
	return t.trigger(ActionEdit, id, t.onEdit)
}

// Delete asks the caller to delete the row
func (t *Table) Delete(id string) error {
	return t.trigger(ActionDelete, id, t.onDelete)
}

func (t *Table) trigger(action Action, id string, callback func(string)) error {
	if !slices.Contains(t.Actions(), action) {
		return fmt.Errorf("%w: %s cannot %s", ErrNotPermitted, t.role, action)
	}
	if _, err := t.find(id); err != nil {
		return err
	}
	if callback != nil {
		callback(id)
	}
	return nil
}

func (t *Table) find(id string) (workspace.TemplateRow, error) {
	for _, row := range t.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return workspace.TemplateRow{}, fmt.Errorf("%w: %s", ErrUnknownRow, id)
}
