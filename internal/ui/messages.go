package ui

import (
	"context"
	"time"

	"memento/internal/api"
	"memento/internal/debug"
	"memento/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type sessionResolvedMsg struct {
	session session.Session
	err     error
}

type loginResultMsg struct {
	result api.LoginResult
	err    error
}

// Collection results carry the generation they were dispatched under; the
// model drops any result whose generation is no longer current, so a slow
// response from a previous session or refresh can never overwrite newer state.
type conversationsLoadedMsg struct {
	generation int
	items      []api.Conversation
}

type peopleLoadedMsg struct {
	generation int
	items      []api.Person
}

type clearStatusMsg struct{}

func resolveSessionCmd(client api.Client, store session.CredentialStore) tea.Cmd {
	return func() tea.Msg {
		sess, err := session.Resolve(context.Background(), client, store)
		return sessionResolvedMsg{session: sess, err: err}
	}
}

func loginCmd(client api.Client, store session.CredentialStore, email, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Login(context.Background(), email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		client.SetToken(result.Token)
		// A failed save is not fatal to the session; the next launch will
		// just prompt for credentials again.
		if err := store.Save(context.Background(), session.Credentials{Token: result.Token, Email: email}); err != nil {
			debug.Logf("persist credential: %v", err)
		}
		return loginResultMsg{result: result}
	}
}

func fetchConversationsCmd(client api.Client, limit, generation int) tea.Cmd {
	return func() tea.Msg {
		return conversationsLoadedMsg{
			generation: generation,
			items:      loadConversations(context.Background(), client, limit),
		}
	}
}

func fetchPeopleCmd(client api.Client, keep, generation int) tea.Cmd {
	return func() tea.Msg {
		return peopleLoadedMsg{
			generation: generation,
			items:      loadPeople(context.Background(), client, keep),
		}
	}
}

func scheduleClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
