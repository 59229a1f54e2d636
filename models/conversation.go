package models

import "time"

// Message senders within a conversation.
const (
	SenderClient = "client"
	SenderLawyer = "lawyer"
)

// Conversation links a client to a lawyer.
type Conversation struct {
	ID          string    `bson:"id" json:"id"`
	ClientEmail string    `bson:"client_email" json:"clientEmail"`
	LawyerID    string    `bson:"lawyer_id" json:"lawyerId"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ChatMessage is one message within a conversation.
type ChatMessage struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	Sender         string    `bson:"sender" json:"sender"` // "client" or "lawyer"
	Text           string    `bson:"text" json:"text"`
	SentAt         time.Time `bson:"sent_at" json:"sentAt"`
}
