package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"wukala/database/kv"
	"wukala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginThenCurrentReturnsSameRecord(t *testing.T) {
	p := NewProvider(kv.NewMemoryStore(), "session:test")

	rec := models.SessionRecord{
		ID:     "u-1",
		Name:   "Ayesha Khan",
		Email:  "ayesha@example.com",
		Role:   models.RoleLawyer,
		Status: models.StatusApproved,
	}
	p.Login(rec)

	got := p.Current()
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
	assert.True(t, p.IsAuthenticated())
}

func TestLoginReplacesWholesale(t *testing.T) {
	p := NewProvider(kv.NewMemoryStore(), "session:test")

	p.Login(models.SessionRecord{ID: "u-1", Role: models.RoleLawyer, Status: models.StatusPending})
	p.Login(models.SessionRecord{ID: "u-2", Role: models.RoleClient})

	got := p.Current()
	require.NotNil(t, got)
	assert.Equal(t, "u-2", got.ID)
	assert.Equal(t, models.RoleClient, got.Role)
	// No merge: status from the previous record must not survive.
	assert.Empty(t, got.Status)
}

func TestLogoutClearsSessionAndIsIdempotent(t *testing.T) {
	store := kv.NewMemoryStore()
	p := NewProvider(store, "session:test")

	p.Login(models.SessionRecord{ID: "u-1", Role: models.RoleClient})
	p.Logout()

	assert.Nil(t, p.Current())
	assert.False(t, p.IsAuthenticated())
	_, err := store.Get(context.Background(), "session:test")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// Second logout is a no-op.
	p.Logout()
	assert.Nil(t, p.Current())
}

func TestRestartRestoresPersistedSession(t *testing.T) {
	store := kv.NewMemoryStore()
	rec := models.SessionRecord{
		ID:     "u-9",
		Name:   "Bilal Ahmed",
		Email:  "bilal@example.com",
		Role:   models.RoleLawyer,
		Status: models.StatusRejected,
	}

	NewProvider(store, "session:test").Login(rec)

	// A fresh provider over the same store simulates a restart.
	restored := NewProvider(store, "session:test")
	got := restored.Current()
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestMalformedMirrorMeansNoSession(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "session:test", []byte("{not json")))

	p := NewProvider(store, "session:test")
	assert.Nil(t, p.Current())
	assert.False(t, p.IsAuthenticated())
}

// failingStore rejects every operation, simulating unavailable storage.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}
func (failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("storage unavailable")
}
func (failingStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("storage unavailable")
}
func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("storage unavailable")
}

func TestUnavailableStorageStillUpdatesMemory(t *testing.T) {
	p := NewProvider(failingStore{}, "session:test")

	rec := models.SessionRecord{ID: "u-1", Role: models.RoleClient}
	p.Login(rec)

	got := p.Current()
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	p.Logout()
	assert.Nil(t, p.Current())
}
