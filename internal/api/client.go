package api

import "context"

// Client defines the operations the dashboard needs from the Memento backend.
type Client interface {
	// SetToken installs the bearer credential used by authenticated reads.
	SetToken(token string)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Me(ctx context.Context) (User, error)
	Conversations(ctx context.Context, limit int) ([]Conversation, error)
	Conversation(ctx context.Context, id string) (Conversation, error)
	People(ctx context.Context) ([]Person, error)
	Person(ctx context.Context, id string) (Person, error)
}
