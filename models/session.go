package models

// Roles a signed-in principal can hold.
const (
	RoleClient = "client"
	RoleLawyer = "lawyer"
	RoleAdmin  = "admin"
)

// Review statuses for a lawyer application (and the mirrored session status).
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// SessionRecord represents the currently signed-in principal. At most one
// record exists per session handle; absence means unauthenticated.
type SessionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	// Status is only present for the lawyer role and mirrors the matching
	// application's status at sign-in time.
	Status string `json:"status,omitempty"`
}
