// File: wukala/services/session/provider.go
package session

import (
	"context"
	"encoding/json"
	"sync"

	"wukala/database/kv"
	"wukala/models"
	"wukala/utils"

	"go.uber.org/zap"
)

// Provider holds the current session record for one session handle. The
// in-memory copy is authoritative; the kv mirror is written through on every
// change and only read back when the provider is constructed. Persistence
// failures never roll back or block the in-memory mutation.
type Provider struct {
	mu      sync.RWMutex
	store   kv.Store
	key     string
	current *models.SessionRecord
}

// NewProvider creates a provider mirrored under the given key, restoring any
// previously persisted record. Absent or malformed data means no session.
func NewProvider(store kv.Store, key string) *Provider {
	p := &Provider{store: store, key: key}
	p.restore()
	return p
}

func (p *Provider) restore() {
	data, err := p.store.Get(context.Background(), p.key)
	if err != nil {
		return
	}
	var rec models.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		utils.GetLogger().Debug("session: discarding malformed mirror", zap.String("key", p.key))
		return
	}
	p.current = &rec
}

// Login replaces the current record wholesale. The caller supplies a fully
// formed record; no field validation is performed.
func (p *Provider) Login(rec models.SessionRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = &rec
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := p.store.Set(context.Background(), p.key, data); err != nil {
		utils.GetLogger().Warn("session: mirror write failed", zap.String("key", p.key), zap.Error(err))
	}
}

// Logout clears the session. Calling it while already logged out is a no-op.
func (p *Provider) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return
	}
	p.current = nil
	if err := p.store.Delete(context.Background(), p.key); err != nil {
		utils.GetLogger().Warn("session: mirror delete failed", zap.String("key", p.key), zap.Error(err))
	}
}

// Current returns a copy of the signed-in record, or nil when unauthenticated.
func (p *Provider) Current() *models.SessionRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return nil
	}
	rec := *p.current
	return &rec
}

// IsAuthenticated reports whether a session record is present.
func (p *Provider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current != nil
}
