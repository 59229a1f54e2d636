package assistant

import (
	"time"

	"wukala/models"
)

// AssistantService is the simulated legal assistant. Replies are canned
// strings matched on keywords; no external model is involved.
type AssistantService interface {
	// Ask records the user's message and schedules the reply after the
	// configured typing delay. With no queue configured the reply is
	// delivered inline.
	Ask(handle, text string) (*models.AssistantAck, error)
	// Reply computes the canned reply for text and appends it to the
	// handle's history. Called by the reply worker.
	Reply(handle, text string) (string, error)
	// History returns the handle's chat history, oldest first.
	History(handle string) ([]models.AssistantMessage, error)
	// ClearHistory drops the handle's chat context.
	ClearHistory(handle string) error
}

// ReplyQueue schedules delayed reply delivery. The scheduled task always
// runs to completion and applies its effect even if the asking client is
// gone.
type ReplyQueue interface {
	EnqueueReply(handle, text string, delay time.Duration) error
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Ctx   *ContextStore
	Queue ReplyQueue // nil means replies are delivered inline
	Delay time.Duration
}
