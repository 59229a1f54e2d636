package messaging

import (
	"fmt"
	"strings"
	"time"

	"wukala/models"
	"wukala/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartConversation returns the conversation between the client and the
// lawyer, creating one when none exists.
func (s *DefaultMessagingService) StartConversation(clientEmail, lawyerID string) (*models.Conversation, error) {
	if clientEmail == "" || lawyerID == "" {
		return nil, fmt.Errorf("client email and lawyer id are required")
	}

	lawyer, err := s.LawyerRepo.GetByID(lawyerID)
	if err != nil {
		utils.GetLogger().Error("StartConversation: failed to fetch lawyer", zap.Error(err))
		return nil, fmt.Errorf("failed to start conversation, please try again")
	}
	if lawyer == nil {
		return nil, fmt.Errorf("lawyer not found")
	}

	existing, err := s.Repo.FindByParticipants(clientEmail, lawyerID)
	if err != nil {
		utils.GetLogger().Error("StartConversation: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to start conversation, please try again")
	}
	if existing != nil {
		return existing, nil
	}

	conv := &models.Conversation{
		ID:          uuid.New().String(),
		ClientEmail: clientEmail,
		LawyerID:    lawyerID,
	}
	if err := s.Repo.Create(conv); err != nil {
		utils.GetLogger().Error("StartConversation: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to start conversation, please try again")
	}
	return conv, nil
}

// participantSender resolves the session to its side of the conversation.
// Sessions that are neither the conversation's client nor its lawyer get "".
func (s *DefaultMessagingService) participantSender(conv *models.Conversation, rec *models.SessionRecord) string {
	if rec == nil {
		return ""
	}
	if rec.Role == models.RoleLawyer {
		lawyer, err := s.LawyerRepo.GetByEmail(rec.Email)
		if err != nil {
			utils.GetLogger().Error("participantSender: failed to resolve lawyer", zap.Error(err))
			return ""
		}
		if lawyer != nil && lawyer.ID == conv.LawyerID {
			return models.SenderLawyer
		}
		return ""
	}
	if strings.EqualFold(rec.Email, conv.ClientEmail) {
		return models.SenderClient
	}
	return ""
}

// SendMessage appends a message to a conversation on behalf of the session.
func (s *DefaultMessagingService) SendMessage(rec *models.SessionRecord, conversationID, text string) (*models.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	conv, err := s.Repo.GetByID(conversationID)
	if err != nil {
		utils.GetLogger().Error("SendMessage: failed to fetch conversation", zap.Error(err))
		return nil, fmt.Errorf("failed to send message, please try again")
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation not found")
	}

	sender := s.participantSender(conv, rec)
	if sender == "" {
		return nil, fmt.Errorf("conversation not found")
	}

	msg := &models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
		SentAt:         time.Now().UTC(),
	}
	if err := s.Repo.AppendMessage(msg); err != nil {
		utils.GetLogger().Error("SendMessage: append failed", zap.Error(err))
		return nil, fmt.Errorf("failed to send message, please try again")
	}
	return msg, nil
}

// Conversations lists the participant's conversations based on their role.
func (s *DefaultMessagingService) Conversations(rec *models.SessionRecord) ([]models.Conversation, error) {
	if rec == nil {
		return nil, fmt.Errorf("sign in to view conversations")
	}

	if rec.Role == models.RoleLawyer {
		lawyer, err := s.LawyerRepo.GetByEmail(rec.Email)
		if err != nil {
			utils.GetLogger().Error("Conversations: failed to resolve lawyer", zap.Error(err))
			return nil, fmt.Errorf("failed to list conversations, please try again")
		}
		if lawyer == nil {
			return nil, nil
		}
		return s.Repo.ListForLawyer(lawyer.ID)
	}
	return s.Repo.ListForClient(rec.Email)
}

// Messages returns a conversation's history for one of its participants.
func (s *DefaultMessagingService) Messages(rec *models.SessionRecord, conversationID string) ([]models.ChatMessage, error) {
	conv, err := s.Repo.GetByID(conversationID)
	if err != nil {
		utils.GetLogger().Error("Messages: failed to fetch conversation", zap.Error(err))
		return nil, fmt.Errorf("failed to load messages, please try again")
	}
	if conv == nil || s.participantSender(conv, rec) == "" {
		return nil, fmt.Errorf("conversation not found")
	}

	msgs, err := s.Repo.Messages(conversationID)
	if err != nil {
		utils.GetLogger().Error("Messages: list failed", zap.Error(err))
		return nil, fmt.Errorf("failed to load messages, please try again")
	}
	return msgs, nil
}
