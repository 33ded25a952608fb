package instances

import "github.com/stuttgart-things/workspaces/internal/workspace"

// Phase is the observed status of a single instance
type Phase string

const (
	PhaseRunning Phase = "Running"
	PhaseOff     Phase = "Off"
)

// Summary counts the instances of a row
type Summary struct {
	RunningCount int `json:"runningCount"`
	TotalCount   int `json:"totalCount"`
}

// Stopped returns the number of instances that are not running
func (s Summary) Stopped() int {
	return s.TotalCount - s.RunningCount
}

// IsExpandable reports whether the row has any instance to show.
// It is derived from the instance list on every call.
func IsExpandable(row workspace.TemplateRow) bool {
	return len(row.Instances) > 0
}

// StatusSummary counts running and total instances of row
func StatusSummary(row workspace.TemplateRow) Summary {
	s := Summary{TotalCount: len(row.Instances)}
	for _, inst := range row.Instances {
		if inst.Running {
			s.RunningCount++
		}
	}
	return s
}

// PhaseOf maps an instance to its phase
func PhaseOf(inst workspace.Instance) Phase {
	if inst.Running {
		return PhaseRunning
	}
	return PhaseOff
}
