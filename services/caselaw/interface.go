package caselaw

import (
	caselawRepo "wukala/database/repository/caselaw"
	"wukala/database/kv"
	"wukala/models"
)

// CaseLawService defines business logic for case-law search and bookmarks.
type CaseLawService interface {
	// Search retrieves cases matching the query, newest first.
	Search(query models.CaseSearchQuery) ([]models.CaseLaw, error)
	// GetByID retrieves a single case.
	GetByID(id string) (*models.CaseLaw, error)
	// ToggleBookmark adds the case ID to the handle's bookmark set if absent,
	// removes it if present, and returns the resulting set.
	ToggleBookmark(handle, caseID string) []string
	// Bookmarks returns the handle's bookmarked case IDs.
	Bookmarks(handle string) []string
}

// DefaultCaseLawService is the production implementation.
type DefaultCaseLawService struct {
	Repo  caselawRepo.CaseLawRepository
	Store kv.Store
}
