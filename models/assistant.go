package models

import "time"

// Assistant message roles.
const (
	AssistantRoleUser      = "user"
	AssistantRoleAssistant = "assistant"
)

// AssistantMessage is one turn in a simulated assistant conversation.
type AssistantMessage struct {
	Role   string    `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

// AssistantContext is the per-session chat history the assistant replies into.
type AssistantContext struct {
	Topic    string             `json:"topic,omitempty"`
	Messages []AssistantMessage `json:"messages"`
}

// AssistantAck acknowledges an accepted question; the reply arrives in the
// history after the simulated typing delay.
type AssistantAck struct {
	Accepted bool   `json:"accepted"`
	Typing   bool   `json:"typing"`
	Reply    string `json:"reply,omitempty"` // set when delivered inline
}
