// File: wukala/services/session/manager.go
package session

import (
	"context"
	"strings"
	"sync"

	"wukala/database/kv"
	"wukala/models"
	"wukala/services/application"
	"wukala/utils"

	"github.com/google/uuid"
)

// Manager is the production SessionService. It keeps one Provider per
// session handle, lazily restoring each from the kv store so a handle
// presented after a restart recovers its persisted session.
type Manager struct {
	mu         sync.Mutex
	store      kv.Store
	ledger     *application.Ledger
	adminEmail string
	providers  map[string]*Provider
}

// NewManager creates a Manager over the given store and ledger. adminEmail
// may be empty, in which case no sign-in resolves to the admin role.
func NewManager(store kv.Store, ledger *application.Ledger, adminEmail string) *Manager {
	return &Manager{
		store:      store,
		ledger:     ledger,
		adminEmail: adminEmail,
		providers:  make(map[string]*Provider),
	}
}

// provider returns the Provider for a handle, constructing it on first use.
func (m *Manager) provider(handle string) *Provider {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.providers[handle]
	if !ok {
		p = NewProvider(m.store, utils.SessionKeyPrefix+handle)
		m.providers[handle] = p
	}
	return p
}

func (m *Manager) NewHandle() string {
	return uuid.New().String()
}

func (m *Manager) SignIn(handle, name, email string) *models.SessionRecord {
	rec := models.SessionRecord{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Role:  models.RoleClient,
	}

	// Point-in-time role resolution. Later ledger changes do not update an
	// already-established session; the lawyer must sign in again.
	switch {
	case m.adminEmail != "" && strings.EqualFold(email, m.adminEmail):
		rec.Role = models.RoleAdmin
	default:
		if app := m.ledger.FindByEmail(email); app != nil {
			rec.Role = models.RoleLawyer
			rec.Status = app.Status
		}
	}

	m.provider(handle).Login(rec)
	return &rec
}

func (m *Manager) SignOut(handle string) {
	m.provider(handle).Logout()
}

func (m *Manager) Current(handle string) *models.SessionRecord {
	return m.provider(handle).Current()
}

func (m *Manager) IsAuthenticated(handle string) bool {
	return m.provider(handle).IsAuthenticated()
}

// MarkOnboardingSeen sets the onboarding sentinel. Best effort; a failed
// write only means onboarding shows again.
func (m *Manager) MarkOnboardingSeen(handle string) {
	if err := m.store.Set(context.Background(), utils.OnboardingKeyPrefix+handle, []byte("1")); err != nil {
		utils.GetLogger().Sugar().Debugf("session: onboarding flag write failed for %s: %v", handle, err)
	}
}

// HasSeenOnboarding checks the sentinel's presence; read failures count as
// not seen.
func (m *Manager) HasSeenOnboarding(handle string) bool {
	_, err := m.store.Get(context.Background(), utils.OnboardingKeyPrefix+handle)
	return err == nil
}
