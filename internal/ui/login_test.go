package ui

import (
	"context"
	"testing"

	"memento/internal/api"
	"memento/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(app *App, s string) {
	for _, r := range s {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoginFormFocusCycling(t *testing.T) {
	f := newLoginForm()
	if f.focusIdx != loginFieldEmail {
		t.Fatalf("initial focus = %d, want email", f.focusIdx)
	}

	f.cycleFocus(1)
	if f.focusIdx != loginFieldPassword {
		t.Fatalf("focus after cycle = %d, want password", f.focusIdx)
	}
	if f.email.Focused() {
		t.Error("email field should be blurred")
	}
	if !f.password.Focused() {
		t.Error("password field should be focused")
	}

	f.cycleFocus(1)
	if f.focusIdx != loginFieldEmail {
		t.Fatalf("focus should wrap back to email, got %d", f.focusIdx)
	}

	f.cycleFocus(-1)
	if f.focusIdx != loginFieldPassword {
		t.Fatalf("reverse cycle should land on password, got %d", f.focusIdx)
	}
}

func TestLoginFormComplete(t *testing.T) {
	f := newLoginForm()
	if f.complete() {
		t.Fatal("empty form must not be complete")
	}
	f.email.SetValue("  sam@example.com  ")
	if f.complete() {
		t.Fatal("form without password must not be complete")
	}
	f.password.SetValue("hunter2")
	if !f.complete() {
		t.Fatal("expected form complete")
	}

	email, password := f.values()
	if email != "sam@example.com" {
		t.Errorf("email = %q, want trimmed", email)
	}
	if password != "hunter2" {
		t.Errorf("password = %q", password)
	}
}

func TestLoginKeysFillFormAndSubmit(t *testing.T) {
	mock := api.NewMockClient()
	mock.LoginFn = func(context.Context, string, string) (api.LoginResult, error) {
		return api.LoginResult{Token: "tok", User: testUser()}, nil
	}
	app := newTestApp(t, mock)
	app.Update(sessionResolvedMsg{err: session.ErrNoCredential})

	typeString(app, "sam@example.com")
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeString(app, "hunter2")

	email, password := app.login.values()
	if email != "sam@example.com" || password != "hunter2" {
		t.Fatalf("form values = %q / %q", email, password)
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected login command dispatched")
	}
	if !app.loggingIn {
		t.Fatal("expected loggingIn set while request is in flight")
	}

	// Keys are ignored while the request is in flight.
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if email, _ := app.login.values(); email != "sam@example.com" {
		t.Errorf("form must not accept input while logging in, email = %q", email)
	}
}

func TestLoginEnterOnIncompleteFormAdvancesFocus(t *testing.T) {
	app := newTestApp(t, nil)
	app.Update(sessionResolvedMsg{err: session.ErrNoCredential})

	typeString(app, "sam@example.com")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if app.loggingIn {
		t.Fatal("incomplete form must not submit")
	}
	if app.login.focusIdx != loginFieldPassword {
		t.Errorf("focus = %d, want advanced to password", app.login.focusIdx)
	}
}
