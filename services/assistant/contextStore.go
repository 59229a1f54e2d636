// File: wukala/services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"wukala/database/kv"
	"wukala/models"
)

const assistantContextPrefix = "assistant:ctx:"

// ContextStore keeps per-handle assistant chat context with a TTL.
type ContextStore struct {
	store kv.Store
	ttl   time.Duration
}

func NewContextStore(store kv.Store, ttl time.Duration) *ContextStore {
	return &ContextStore{store: store, ttl: ttl}
}

func (s *ContextStore) Get(ctx context.Context, handle string) (*models.AssistantContext, error) {
	key := assistantContextPrefix + handle
	data, err := s.store.Get(ctx, key)
	if err == kv.ErrNotFound {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aCtx models.AssistantContext
	if err := json.Unmarshal(data, &aCtx); err != nil {
		return &models.AssistantContext{}, nil
	}
	return &aCtx, nil
}

func (s *ContextStore) Set(ctx context.Context, handle string, aCtx *models.AssistantContext) error {
	key := assistantContextPrefix + handle
	b, err := json.Marshal(aCtx)
	if err != nil {
		return err
	}
	return s.store.SetWithTTL(ctx, key, b, s.ttl)
}

func (s *ContextStore) Clear(ctx context.Context, handle string) error {
	key := assistantContextPrefix + handle
	return s.store.Delete(ctx, key)
}
