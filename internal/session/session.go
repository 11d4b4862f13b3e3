package session

import (
	"context"
	"errors"

	"memento/internal/api"
)

// ErrNoCredential indicates no usable credential is stored; the caller should
// fall back to an interactive login.
var ErrNoCredential = errors.New("session: no stored credential")

// Session is a resolved identity: the credential plus the account it maps to.
type Session struct {
	Token string
	User  api.User
}

// CredentialStore is the capability Resolve needs from the credential store.
type CredentialStore interface {
	Load(ctx context.Context) (Credentials, bool, error)
	Save(ctx context.Context, creds Credentials) error
	Clear(ctx context.Context) error
}

var _ CredentialStore = (*Store)(nil)

// Resolve loads the stored credential, installs it on the client and
// validates it against the backend. Session-ready means this returned nil.
func Resolve(ctx context.Context, client api.Client, store CredentialStore) (Session, error) {
	creds, ok, err := store.Load(ctx)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrNoCredential
	}

	client.SetToken(creds.Token)
	user, err := client.Me(ctx)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: creds.Token, User: user}, nil
}
