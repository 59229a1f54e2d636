// File: wukala/services/assistant/assistant.go
package assistant

import (
	"context"
	"fmt"
	"time"

	"wukala/models"
	"wukala/utils"

	"go.uber.org/zap"
)

func (s *DefaultAssistantService) Ask(handle, text string) (*models.AssistantAck, error) {
	ctx := context.Background()

	aCtx, err := s.Ctx.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	aCtx.Messages = append(aCtx.Messages, models.AssistantMessage{
		Role:   models.AssistantRoleUser,
		Text:   text,
		SentAt: time.Now().UTC(),
	})
	if topic := matchTopic(text); topic != "" {
		aCtx.Topic = topic
	}
	if err := s.Ctx.Set(ctx, handle, aCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	if s.Queue == nil {
		reply, err := s.Reply(handle, text)
		if err != nil {
			return nil, err
		}
		return &models.AssistantAck{Accepted: true, Reply: reply}, nil
	}

	if err := s.Queue.EnqueueReply(handle, text, s.Delay); err != nil {
		utils.GetLogger().Error("Ask: failed to enqueue reply", zap.Error(err))
		return nil, fmt.Errorf("assistant unavailable, please try again")
	}
	return &models.AssistantAck{Accepted: true, Typing: true}, nil
}

func (s *DefaultAssistantService) Reply(handle, text string) (string, error) {
	ctx := context.Background()

	reply := cannedReply(text)

	aCtx, err := s.Ctx.Get(ctx, handle)
	if err != nil {
		return "", fmt.Errorf("load context: %w", err)
	}
	aCtx.Messages = append(aCtx.Messages, models.AssistantMessage{
		Role:   models.AssistantRoleAssistant,
		Text:   reply,
		SentAt: time.Now().UTC(),
	})
	if err := s.Ctx.Set(ctx, handle, aCtx); err != nil {
		return "", fmt.Errorf("save context: %w", err)
	}
	return reply, nil
}

func (s *DefaultAssistantService) History(handle string) ([]models.AssistantMessage, error) {
	aCtx, err := s.Ctx.Get(context.Background(), handle)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}
	return aCtx.Messages, nil
}

func (s *DefaultAssistantService) ClearHistory(handle string) error {
	return s.Ctx.Clear(context.Background(), handle)
}
