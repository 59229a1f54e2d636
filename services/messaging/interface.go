package messaging

import (
	conversationRepo "wukala/database/repository/conversation"
	lawyerRepo "wukala/database/repository/lawyer"
	"wukala/models"
)

// MessagingService defines client-to-lawyer messaging.
type MessagingService interface {
	// StartConversation returns the existing conversation between the client
	// and the lawyer, creating one when none exists.
	StartConversation(clientEmail, lawyerID string) (*models.Conversation, error)
	// SendMessage appends a message to a conversation on behalf of the
	// session. Only the conversation's client or lawyer may post.
	SendMessage(rec *models.SessionRecord, conversationID, text string) (*models.ChatMessage, error)
	// Conversations lists a participant's conversations, most recent first.
	Conversations(rec *models.SessionRecord) ([]models.Conversation, error)
	// Messages returns a conversation's history, oldest first. Only the
	// conversation's client or lawyer may read it.
	Messages(rec *models.SessionRecord, conversationID string) ([]models.ChatMessage, error)
}

// DefaultMessagingService is the production implementation.
type DefaultMessagingService struct {
	Repo       conversationRepo.ConversationRepository
	LawyerRepo lawyerRepo.LawyerRepository
}
