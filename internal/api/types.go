package api

// TranscriptEntry is a single utterance within a conversation transcript.
// Entries are in chronological speaking order.
type TranscriptEntry struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Conversation models a recorded conversation returned by the backend.
// CreatedAt is an isoformat string and is never trusted to be well-formed.
type Conversation struct {
	ID         string            `json:"_id"`
	Summary    string            `json:"summary"`
	Transcript []TranscriptEntry `json:"transcript"`
	CreatedAt  string            `json:"created_at"`
}

// Person models a known-people record returned by the backend.
type Person struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Relation  string `json:"relation"`
	Summary   string `json:"summary"`
	Photo     string `json:"photo"`
	CreatedAt string `json:"created_at"`
}

// Caregiver captures the primary caregiver contact attached to a user.
type Caregiver struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Contact      string `json:"contact"`
}

// User is the signed-in account record returned by /api/me.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Timezone         string    `json:"timezone"`
	PrimaryCaregiver Caregiver `json:"primaryCaregiver"`
	ProfileImage     string    `json:"profileImage"`
}

// LoginResult is the response of a successful /api/login call.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
