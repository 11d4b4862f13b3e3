package ui

import (
	"context"

	"memento/internal/api"
	"memento/internal/debug"
)

// loadConversations issues the authenticated conversations read with an
// upstream limit. Fail-soft: any transport, status or decode failure degrades
// to an empty collection and is logged; nothing propagates to the caller.
func loadConversations(ctx context.Context, client api.Client, limit int) []api.Conversation {
	conversations, err := client.Conversations(ctx, limit)
	if err != nil {
		debug.Logf("conversations fetch degraded to empty: %v", err)
		return []api.Conversation{}
	}
	if conversations == nil {
		conversations = []api.Conversation{}
	}
	return conversations
}

// loadPeople issues the authenticated people read. The endpoint takes no
// limit parameter, so the result is capped client-side after receipt, in
// source order. Same fail-soft contract as loadConversations.
func loadPeople(ctx context.Context, client api.Client, keep int) []api.Person {
	people, err := client.People(ctx)
	if err != nil {
		debug.Logf("people fetch degraded to empty: %v", err)
		return []api.Person{}
	}
	if people == nil {
		people = []api.Person{}
	}
	if keep > 0 && len(people) > keep {
		people = people[:keep]
	}
	return people
}
