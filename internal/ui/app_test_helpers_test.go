package ui

import (
	"context"
	"testing"
	"time"

	"memento/internal/api"
	"memento/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// testNow pins the render clock so relative times are stable in assertions.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type mockStore struct {
	creds   session.Credentials
	has     bool
	loadErr error
	saveErr error
	saved   []session.Credentials
	cleared int
}

func (s *mockStore) Load(context.Context) (session.Credentials, bool, error) {
	return s.creds, s.has, s.loadErr
}

func (s *mockStore) Save(_ context.Context, creds session.Credentials) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, creds)
	return nil
}

func (s *mockStore) Clear(context.Context) error {
	s.cleared++
	return nil
}

func newTestApp(t *testing.T, client api.Client) *App {
	t.Helper()
	if client == nil {
		client = api.NewMockClient()
	}
	app := NewApp(Config{
		Client:  client,
		Store:   &mockStore{},
		Version: "test",
		Now:     func() time.Time { return testNow },
	})
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func testUser() api.User {
	return api.User{ID: "u1", Email: "sam@example.com", Name: "Sam"}
}

// readyApp returns an app whose session has resolved and whose fetches have
// been dispatched (generation 1, both sections loading).
func readyApp(t *testing.T, client api.Client) *App {
	t.Helper()
	app := newTestApp(t, client)
	app.Update(sessionResolvedMsg{session: session.Session{Token: "tok", User: testUser()}})
	return app
}

func sampleConversations(n int) []api.Conversation {
	items := make([]api.Conversation, 0, n)
	stamps := []string{
		"2025-06-15T11:59:30",
		"2025-06-14T10:00:00",
		"2025-06-01T09:00:00",
		"2025-05-20T09:00:00",
		"2025-04-02T09:00:00",
	}
	for i := 0; i < n; i++ {
		items = append(items, api.Conversation{
			ID:        "c" + string(rune('1'+i)),
			Summary:   "Summary " + string(rune('1'+i)),
			CreatedAt: stamps[i%len(stamps)],
		})
	}
	return items
}

func samplePeople(n int) []api.Person {
	names := []string{"Maria", "Tom", "Priya", "Louis", "Ana", "Kim", "Olu"}
	items := make([]api.Person, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, api.Person{
			ID:        "p" + string(rune('1'+i)),
			Name:      names[i%len(names)],
			Relation:  "Friend",
			Summary:   "A familiar face",
			CreatedAt: "2025-06-10T08:00:00",
		})
	}
	return items
}
