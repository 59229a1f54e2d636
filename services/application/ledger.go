// File: wukala/services/application/ledger.go
package application

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"wukala/database/kv"
	"wukala/models"
	"wukala/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger is the persisted collection of lawyer applications, stored as a
// single JSON array ordered newest first. Reads tolerate absent or corrupt
// data by treating it as an empty ledger; writes are best effort.
type Ledger struct {
	mu    sync.Mutex
	store kv.Store
	key   string
}

// NewLedger creates a Ledger over the given store. An empty key uses the
// default ledger key.
func NewLedger(store kv.Store, key string) *Ledger {
	if key == "" {
		key = utils.ApplicationLedgerKey
	}
	return &Ledger{store: store, key: key}
}

func (l *Ledger) load() []models.LawyerApplication {
	data, err := l.store.Get(context.Background(), l.key)
	if err != nil {
		return nil
	}
	var apps []models.LawyerApplication
	if err := json.Unmarshal(data, &apps); err != nil {
		utils.GetLogger().Debug("application: discarding malformed ledger", zap.String("key", l.key))
		return nil
	}
	return apps
}

func (l *Ledger) save(apps []models.LawyerApplication) {
	data, err := json.Marshal(apps)
	if err != nil {
		return
	}
	if err := l.store.Set(context.Background(), l.key, data); err != nil {
		utils.GetLogger().Warn("application: ledger write failed", zap.String("key", l.key), zap.Error(err))
	}
}

// Submit prepends a new application with a fresh identifier, pending status,
// and submission timestamp. There is no de-duplication by email; a
// resubmission creates a second record.
func (l *Ledger) Submit(app models.LawyerApplication) models.LawyerApplication {
	l.mu.Lock()
	defer l.mu.Unlock()

	app.ID = uuid.New().String()
	app.Status = models.StatusPending
	app.SubmittedAt = time.Now().UTC()

	apps := append([]models.LawyerApplication{app}, l.load()...)
	l.save(apps)
	return app
}

// SetStatus rewrites the status of the identified application. Unknown
// identifiers, statuses other than approved/rejected, and applications no
// longer pending are all silent no-ops: approved and rejected are terminal.
func (l *Ledger) SetStatus(id, status string) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	apps := l.load()
	for i := range apps {
		if apps[i].ID == id {
			if apps[i].Status != models.StatusPending {
				return
			}
			apps[i].Status = status
			l.save(apps)
			return
		}
	}
}

// All returns every application, newest first.
func (l *Ledger) All() []models.LawyerApplication {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// FindByEmail returns the newest application matching the email
// (case-insensitive), or nil.
func (l *Ledger) FindByEmail(email string) *models.LawyerApplication {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, app := range l.load() {
		if strings.EqualFold(app.Email, email) {
			found := app
			return &found
		}
	}
	return nil
}
