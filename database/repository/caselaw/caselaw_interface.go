package caselawRepo

import "wukala/models"

// CaseLawRepository defines methods for case-law corpus access.
type CaseLawRepository interface {
	// GetByID retrieves a case by its unique ID.
	GetByID(id string) (*models.CaseLaw, error)
	// Search retrieves cases matching the query, newest year first.
	Search(query models.CaseSearchQuery) ([]models.CaseLaw, error)
	// Count returns the number of stored cases.
	Count() (int64, error)
	// CreateMany inserts cases in bulk (catalog seeding).
	CreateMany(cases []models.CaseLaw) error
}
