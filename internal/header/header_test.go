package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  View
	}{
		{
			name:  "anonymous without toggle",
			state: State{},
			want:  View{Display: DisplayLogo, Toggle: ToggleNone},
		},
		{
			name:  "anonymous with hidden admin view",
			state: State{CanRenderAdminToggle: true, AdminViewHidden: true},
			want:  View{Display: DisplayLogo, Toggle: ToggleProfessorArea},
		},
		{
			name:  "logged in in admin view",
			state: State{LoggedIn: true, CanRenderAdminToggle: true},
			want:  View{Display: DisplayLogout, Toggle: ToggleStudentArea},
		},
		{
			name:  "toggle flag without permission",
			state: State{LoggedIn: true, AdminViewHidden: true},
			want:  View{Display: DisplayLogout, Toggle: ToggleNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state))
		})
	}
}

func TestDecideExhaustive(t *testing.T) {
	for _, loggedIn := range []bool{false, true} {
		for _, hidden := range []bool{false, true} {
			for _, canToggle := range []bool{false, true} {
				v := Decide(State{LoggedIn: loggedIn, AdminViewHidden: hidden, CanRenderAdminToggle: canToggle})

				if loggedIn {
					assert.Equal(t, DisplayLogout, v.Display)
				} else {
					assert.Equal(t, DisplayLogo, v.Display)
				}
				assert.Equal(t, canToggle, v.Toggle.Present())
				if canToggle && hidden {
					assert.Equal(t, "Professor Area", v.Toggle.Label())
				}
				if canToggle && !hidden {
					assert.Equal(t, "Student Area", v.Toggle.Label())
				}
			}
		}
	}
}

func TestRender(t *testing.T) {
	out := Render(Decide(State{CanRenderAdminToggle: true, AdminViewHidden: true}), "CrownLabs")
	assert.Contains(t, out, "CrownLabs")
	assert.Contains(t, out, "Professor Area")
	assert.Contains(t, out, "╦ ╦")
	assert.NotContains(t, out, "Logout")

	out = Render(Decide(State{LoggedIn: true}), "CrownLabs")
	assert.Contains(t, out, "Logout")
	assert.NotContains(t, out, "╦ ╦")
	assert.NotContains(t, out, "Area")
}

func TestLogo(t *testing.T) {
	logo := Logo()
	assert.Equal(t, 3, len(strings.Split(logo, "\n")))
}
