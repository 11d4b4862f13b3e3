package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// loginForm is the interactive email/password prompt shown when no stored
// credential resolves to a session.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focusIdx int
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email:    "
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := loginForm{email: email, password: password}
	f.email.Focus()
	return f
}

func (f *loginForm) field(idx int) *textinput.Model {
	if idx == loginFieldPassword {
		return &f.password
	}
	return &f.email
}

func (f *loginForm) cycleFocus(delta int) tea.Cmd {
	f.field(f.focusIdx).Blur()
	f.focusIdx = (f.focusIdx + delta + loginFieldCount) % loginFieldCount
	return f.field(f.focusIdx).Focus()
}

// update feeds a key to the focused input.
func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focusIdx == loginFieldPassword {
		f.password, cmd = f.password.Update(msg)
	} else {
		f.email, cmd = f.email.Update(msg)
	}
	return cmd
}

func (f *loginForm) values() (email, password string) {
	return strings.TrimSpace(f.email.Value()), f.password.Value()
}

// complete reports whether both fields have content.
func (f *loginForm) complete() bool {
	email, password := f.values()
	return email != "" && password != ""
}

func (f *loginForm) view(errText string, busy bool, spinnerView string) string {
	lines := []string{
		styleLoginTitle.Render("MEMENTO — Sign in"),
		f.email.View(),
		f.password.View(),
		"",
	}
	switch {
	case busy:
		lines = append(lines, spinnerView+" Signing in...")
	case errText != "":
		lines = append(lines, styleLoginError.Render(errText))
	default:
		lines = append(lines, styleFooter.Render("[ tab ] Switch Field  [ enter ] Sign In  [ ctrl+c ] Quit"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}
