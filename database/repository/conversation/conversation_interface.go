package conversationRepo

import "wukala/models"

// ConversationRepository defines methods for conversation and message access.
type ConversationRepository interface {
	// Create inserts a new conversation.
	Create(conv *models.Conversation) error
	// GetByID retrieves a conversation by its unique ID.
	GetByID(id string) (*models.Conversation, error)
	// FindByParticipants returns the conversation between a client and a
	// lawyer, or nil if none exists.
	FindByParticipants(clientEmail, lawyerID string) (*models.Conversation, error)
	// ListForClient returns a client's conversations, most recent first.
	ListForClient(clientEmail string) ([]models.Conversation, error)
	// ListForLawyer returns a lawyer's conversations, most recent first.
	ListForLawyer(lawyerID string) ([]models.Conversation, error)
	// AppendMessage stores a message and bumps the conversation's timestamp.
	AppendMessage(msg *models.ChatMessage) error
	// Messages returns a conversation's messages, oldest first.
	Messages(conversationID string) ([]models.ChatMessage, error)
}
