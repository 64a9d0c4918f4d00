package messaging

import "time"

// Profile is the embedded sender relation returned by the store.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Conversation is the embedded conversation relation.
type Conversation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Message is one entry in a care-team conversation.
type Message struct {
	ID             string        `json:"id"`
	ConversationID string        `json:"conversation_id"`
	SenderID       string        `json:"sender_id"`
	Content        string        `json:"content"`
	MessageType    string        `json:"message_type"`
	CreatedAt      time.Time     `json:"created_at"`
	Sender         *Profile      `json:"sender,omitempty"`
	Conversation   *Conversation `json:"conversation,omitempty"`
}
