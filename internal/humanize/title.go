package humanize

import "memento/internal/api"

// fallbackTitle is used whenever a conversation's creation date is unusable.
const fallbackTitle = "Conversation"

// ConversationTitle derives the display title for a conversation record:
// "Conversation – Jun 15, 2025", or just "Conversation" when the record's
// creation date is absent or malformed.
func ConversationTitle(c api.Conversation) string {
	t, err := ParseTimestamp(c.CreatedAt)
	if err != nil {
		return fallbackTitle
	}
	return fallbackTitle + " – " + ShortDate(t)
}
