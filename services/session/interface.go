package session

import "wukala/models"

// SessionService defines session operations keyed by an opaque session
// handle the client holds.
type SessionService interface {
	// NewHandle issues a fresh opaque session handle.
	NewHandle() string
	// SignIn establishes a session for the handle. The role is resolved by a
	// point-in-time join against the application ledger: a matching lawyer
	// application yields the lawyer role carrying that application's current
	// status; the configured admin email yields the admin role; anything
	// else defaults to client.
	SignIn(handle, name, email string) *models.SessionRecord
	// SignOut clears the handle's session. Idempotent.
	SignOut(handle string)
	// Current returns the handle's session record, or nil.
	Current(handle string) *models.SessionRecord
	// IsAuthenticated reports whether the handle has a session.
	IsAuthenticated(handle string) bool
	// MarkOnboardingSeen records that the handle has seen onboarding.
	MarkOnboardingSeen(handle string)
	// HasSeenOnboarding reports whether the handle has seen onboarding.
	HasSeenOnboarding(handle string) bool
}
