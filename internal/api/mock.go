package api

import (
	"context"
	"errors"
	"sync"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("api.MockClient: method not implemented")

// MockClient is a test double for the backend client interface.
type MockClient struct {
	LoginFn         func(context.Context, string, string) (LoginResult, error)
	MeFn            func(context.Context) (User, error)
	ConversationsFn func(context.Context, int) ([]Conversation, error)
	ConversationFn  func(context.Context, string) (Conversation, error)
	PeopleFn        func(context.Context) ([]Person, error)
	PersonFn        func(context.Context, string) (Person, error)

	mu                     sync.Mutex
	Token                  string
	SetTokenCallCount      int
	LoginCallCount         int
	MeCallCount            int
	ConversationsCallCount int
	ConversationCallCount  int
	PeopleCallCount        int
	PersonCallCount        int
	LoginCallArgs          [][]string // [email, password]
	ConversationsCallArgs  []int      // limit per call
	ConversationCallArgs   []string
	PersonCallArgs         []string
}

// NewMockClient creates a MockClient with no overrides installed.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// SetToken records the installed bearer token.
func (m *MockClient) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Token = token
	m.SetTokenCallCount++
}

// Login invokes LoginFn if set.
func (m *MockClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	m.mu.Lock()
	m.LoginCallCount++
	m.LoginCallArgs = append(m.LoginCallArgs, []string{email, password})
	fn := m.LoginFn
	m.mu.Unlock()
	if fn == nil {
		return LoginResult{}, ErrMockNotImplemented
	}
	return fn(ctx, email, password)
}

// Me invokes MeFn if set.
func (m *MockClient) Me(ctx context.Context) (User, error) {
	m.mu.Lock()
	m.MeCallCount++
	fn := m.MeFn
	m.mu.Unlock()
	if fn == nil {
		return User{}, ErrMockNotImplemented
	}
	return fn(ctx)
}

// Conversations invokes ConversationsFn if set.
func (m *MockClient) Conversations(ctx context.Context, limit int) ([]Conversation, error) {
	m.mu.Lock()
	m.ConversationsCallCount++
	m.ConversationsCallArgs = append(m.ConversationsCallArgs, limit)
	fn := m.ConversationsFn
	m.mu.Unlock()
	if fn == nil {
		return nil, ErrMockNotImplemented
	}
	return fn(ctx, limit)
}

// Conversation invokes ConversationFn if set.
func (m *MockClient) Conversation(ctx context.Context, id string) (Conversation, error) {
	m.mu.Lock()
	m.ConversationCallCount++
	m.ConversationCallArgs = append(m.ConversationCallArgs, id)
	fn := m.ConversationFn
	m.mu.Unlock()
	if fn == nil {
		return Conversation{}, ErrMockNotImplemented
	}
	return fn(ctx, id)
}

// People invokes PeopleFn if set.
func (m *MockClient) People(ctx context.Context) ([]Person, error) {
	m.mu.Lock()
	m.PeopleCallCount++
	fn := m.PeopleFn
	m.mu.Unlock()
	if fn == nil {
		return nil, ErrMockNotImplemented
	}
	return fn(ctx)
}

// Person invokes PersonFn if set.
func (m *MockClient) Person(ctx context.Context, id string) (Person, error) {
	m.mu.Lock()
	m.PersonCallCount++
	m.PersonCallArgs = append(m.PersonCallArgs, id)
	fn := m.PersonFn
	m.mu.Unlock()
	if fn == nil {
		return Person{}, ErrMockNotImplemented
	}
	return fn(ctx, id)
}

var _ Client = (*MockClient)(nil)
var _ Client = (*HTTPClient)(nil)
