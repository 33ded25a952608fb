package header

// Display is the primary element of the header
type Display int

const (
	// DisplayLogo shows the brand logo to anonymous visitors
	DisplayLogo Display = iota
	// DisplayLogout shows the logout action to logged-in users
	DisplayLogout
)

func (d Display) String() string {
	if d == DisplayLogout {
		return "logout"
	}
	return "logo"
}

// AdminToggle is the optional area switch shown next to the primary element
type AdminToggle int

const (
	ToggleNone AdminToggle = iota
	ToggleProfessorArea
	ToggleStudentArea
)

// Label returns the button text, empty for ToggleNone
func (t AdminToggle) Label() string {
	switch t {
	case ToggleProfessorArea:
		return "Professor Area"
	case ToggleStudentArea:
		return "Student Area"
	}
	return ""
}

// Present reports whether a toggle element is rendered at all
func (t AdminToggle) Present() bool {
	return t != ToggleNone
}

// State holds the caller's session flags for one render
type State struct {
	LoggedIn             bool
	AdminViewHidden      bool
	CanRenderAdminToggle bool
}

// View is the decided header layout
type View struct {
	Display Display
	Toggle  AdminToggle
}

// Decide maps session flags to the header layout
func Decide(s State) View {
	v := View{Display: DisplayLogo}
	if s.LoggedIn {
		v.Display = DisplayLogout
	}

	switch {
	case !s.CanRenderAdminToggle:
		v.Toggle = ToggleNone
	case s.AdminViewHidden:
		v.Toggle = ToggleProfessorArea
	default:
		v.Toggle = ToggleStudentArea
	}
	return v
}
