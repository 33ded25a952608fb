package templatestable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/stuttgart-things/workspaces/internal/instances"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	rowTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// Render draws the rows as a table followed by the instances of expanded rows.
// The actions column only exists when at least one row carries actions.
func Render(views []RowView) string {
	withActions := false
	for _, v := range views {
		if len(v.Actions) > 0 {
			withActions = true
			break
		}
	}

	headers := []string{"", "ID", "TEMPLATE", "GUI", "INSTANCES"}
	if withActions {
		headers = append(headers, "ACTIONS")
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		row := []string{expandMarker(v), v.ID, v.Name, guiLabel(v.GUI), summaryLabel(v.Summary)}
		if withActions {
			row = append(row, actionsLabel(v.Actions))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")

	for _, v := range views {
		if !v.Expanded {
			continue
		}
		b.WriteString("\n")
		b.WriteString(instanceTree(v).String())
		b.WriteString("\n")
	}
	return b.String()
}

func instanceTree(v RowView) *tree.Tree {
	root := tree.Root(rowTitleStyle.Render(fmt.Sprintf("%s (%s)", v.Name, v.ID))).
		Enumerator(tree.RoundedEnumerator)
	for _, inst := range v.Instances {
		root.Child(fmt.Sprintf("#%d %s  %s  %s", inst.ID, inst.Name, inst.IP, phaseLabel(inst.Phase)))
	}
	return root
}

// expandMarker is empty for rows without instances
func expandMarker(v RowView) string {
	switch {
	case !v.Expandable:
		return ""
	case v.Expanded:
		return "▾"
	default:
		return "▸"
	}
}

func guiLabel(gui bool) string {
	if gui {
		return "yes"
	}
	return "no"
}

func summaryLabel(s instances.Summary) string {
	if s.TotalCount == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d running", s.RunningCount, s.TotalCount)
}

func actionsLabel(actions []Action) string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = string(a)
	}
	return strings.Join(labels, " ")
}

func phaseLabel(p instances.Phase) string {
	if p == instances.PhaseRunning {
		return runningStyle.Render(string(p))
	}
	return offStyle.Render(string(p))
}
