package api

import (
	"context"
	"errors"
	"testing"
)

func TestMockClientDispatchesOverrides(t *testing.T) {
	mock := NewMockClient()
	mock.ConversationFn = func(_ context.Context, id string) (Conversation, error) {
		return Conversation{ID: id, Summary: "stubbed"}, nil
	}
	mock.PersonFn = func(_ context.Context, id string) (Person, error) {
		return Person{ID: id, Name: "Maria"}, nil
	}

	conversation, err := mock.Conversation(context.Background(), "c9")
	if err != nil {
		t.Fatalf("Conversation returned error: %v", err)
	}
	if conversation.ID != "c9" || conversation.Summary != "stubbed" {
		t.Errorf("unexpected conversation: %+v", conversation)
	}

	person, err := mock.Person(context.Background(), "p3")
	if err != nil {
		t.Fatalf("Person returned error: %v", err)
	}
	if person.Name != "Maria" {
		t.Errorf("unexpected person: %+v", person)
	}

	if mock.ConversationCallCount != 1 || mock.PersonCallCount != 1 {
		t.Errorf("unexpected call counts: conversation=%d person=%d",
			mock.ConversationCallCount, mock.PersonCallCount)
	}
	if len(mock.ConversationCallArgs) != 1 || mock.ConversationCallArgs[0] != "c9" {
		t.Errorf("unexpected conversation args: %v", mock.ConversationCallArgs)
	}
	if len(mock.PersonCallArgs) != 1 || mock.PersonCallArgs[0] != "p3" {
		t.Errorf("unexpected person args: %v", mock.PersonCallArgs)
	}
}

func TestMockClientDefaultsToNotImplemented(t *testing.T) {
	mock := NewMockClient()

	if _, err := mock.Conversation(context.Background(), "c1"); !errors.Is(err, ErrMockNotImplemented) {
		t.Errorf("Conversation: expected ErrMockNotImplemented, got %v", err)
	}
	if _, err := mock.Person(context.Background(), "p1"); !errors.Is(err, ErrMockNotImplemented) {
		t.Errorf("Person: expected ErrMockNotImplemented, got %v", err)
	}
	if _, err := mock.Me(context.Background()); !errors.Is(err, ErrMockNotImplemented) {
		t.Errorf("Me: expected ErrMockNotImplemented, got %v", err)
	}
}

func TestMockClientRecordsToken(t *testing.T) {
	mock := NewMockClient()
	mock.SetToken("tok-1")
	mock.SetToken("tok-2")

	if mock.Token != "tok-2" {
		t.Errorf("Token = %q, want tok-2", mock.Token)
	}
	if mock.SetTokenCallCount != 2 {
		t.Errorf("SetTokenCallCount = %d, want 2", mock.SetTokenCallCount)
	}
}
