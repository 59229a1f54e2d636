package application

import (
	"context"
	"testing"

	"wukala/database/kv"
	"wukala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	return NewLedger(store, ""), store
}

func TestSubmitPrependsPendingRecord(t *testing.T) {
	ledger, _ := newTestLedger(t)

	first := ledger.Submit(models.LawyerApplication{Name: "Usman Ali", Email: "usman@example.com"})
	second := ledger.Submit(models.LawyerApplication{Name: "Hira Shah", Email: "hira@example.com"})

	apps := ledger.All()
	require.Len(t, apps, 2)

	// Newest first.
	assert.Equal(t, second.ID, apps[0].ID)
	assert.Equal(t, first.ID, apps[1].ID)

	for _, app := range apps {
		assert.Equal(t, models.StatusPending, app.Status)
		assert.NotEmpty(t, app.ID)
		assert.False(t, app.SubmittedAt.IsZero())
	}
	assert.NotEqual(t, apps[0].ID, apps[1].ID)
}

func TestSubmitDoesNotDeduplicateByEmail(t *testing.T) {
	ledger, _ := newTestLedger(t)

	a := ledger.Submit(models.LawyerApplication{Email: "same@example.com"})
	b := ledger.Submit(models.LawyerApplication{Email: "same@example.com"})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, ledger.All(), 2)
}

func TestSetStatusChangesOnlyTargetRecord(t *testing.T) {
	ledger, _ := newTestLedger(t)

	a := ledger.Submit(models.LawyerApplication{Email: "a@example.com"})
	b := ledger.Submit(models.LawyerApplication{Email: "b@example.com"})

	ledger.SetStatus(a.ID, models.StatusApproved)

	for _, app := range ledger.All() {
		switch app.ID {
		case a.ID:
			assert.Equal(t, models.StatusApproved, app.Status)
		case b.ID:
			assert.Equal(t, models.StatusPending, app.Status)
		}
	}
}

func TestSetStatusUnknownIDIsNoOp(t *testing.T) {
	ledger, _ := newTestLedger(t)

	a := ledger.Submit(models.LawyerApplication{Email: "a@example.com"})
	ledger.SetStatus("no-such-id", models.StatusApproved)

	apps := ledger.All()
	require.Len(t, apps, 1)
	assert.Equal(t, a.ID, apps[0].ID)
	assert.Equal(t, models.StatusPending, apps[0].Status)
}

func TestApprovedAndRejectedAreTerminal(t *testing.T) {
	ledger, _ := newTestLedger(t)

	a := ledger.Submit(models.LawyerApplication{Email: "a@example.com"})
	ledger.SetStatus(a.ID, models.StatusRejected)
	ledger.SetStatus(a.ID, models.StatusApproved)

	assert.Equal(t, models.StatusRejected, ledger.All()[0].Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	ledger, _ := newTestLedger(t)

	a := ledger.Submit(models.LawyerApplication{Email: "a@example.com"})
	ledger.SetStatus(a.ID, "withdrawn")

	assert.Equal(t, models.StatusPending, ledger.All()[0].Status)
}

func TestFindByEmailReturnsNewestMatch(t *testing.T) {
	ledger, _ := newTestLedger(t)

	ledger.Submit(models.LawyerApplication{Email: "dup@example.com", City: "Karachi"})
	newest := ledger.Submit(models.LawyerApplication{Email: "dup@example.com", City: "Lahore"})

	found := ledger.FindByEmail("DUP@example.com")
	require.NotNil(t, found)
	assert.Equal(t, newest.ID, found.ID)
	assert.Equal(t, "Lahore", found.City)

	assert.Nil(t, ledger.FindByEmail("missing@example.com"))
}

func TestCorruptLedgerReadsAsEmpty(t *testing.T) {
	ledger, store := newTestLedger(t)
	require.NoError(t, store.Set(context.Background(), "applications", []byte("[{broken")))

	assert.Empty(t, ledger.All())
	assert.Nil(t, ledger.FindByEmail("anyone@example.com"))

	// Submitting over corrupt data starts a fresh ledger.
	ledger.Submit(models.LawyerApplication{Email: "fresh@example.com"})
	assert.Len(t, ledger.All(), 1)
}
