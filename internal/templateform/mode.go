package templateform

import "github.com/stuttgart-things/workspaces/internal/workspace"

// Mode selects how the form is seeded: Create or Modify
type Mode interface {
	isMode()
}

// Create opens the form with catalog defaults
type Create struct{}

// Modify opens the form seeded with an existing template
type Modify struct {
	Template workspace.Template
}

func (Create) isMode() {}
func (Modify) isMode() {}

// ModeName returns a printable name for m
func ModeName(m Mode) string {
	switch m.(type) {
	case Create:
		return "create"
	case Modify:
		return "modify"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a form
type State int

const (
	StateEditing State = iota
	StateSubmitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Resource names one of the bounded resource fields
type Resource int

const (
	ResourceCPU Resource = iota
	ResourceRAM
	ResourceDisk
)

func (r Resource) String() string {
	switch r {
	case ResourceCPU:
		return "cpu"
	case ResourceRAM:
		return "ram"
	case ResourceDisk:
		return "disk"
	}
	return "unknown"
}

// Resources lists every bounded resource in display order
var Resources = []Resource{ResourceCPU, ResourceRAM, ResourceDisk}
