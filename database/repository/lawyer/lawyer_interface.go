package lawyerRepo

import "wukala/models"

// DirectoryQuery holds parameters for a directory search.
type DirectoryQuery struct {
	City           string // exact match, case-insensitive
	Specialization string // exact match, case-insensitive
	SortBy         string // "rating" (default) or "experience"
}

// LawyerRepository defines methods for lawyer profile data access.
type LawyerRepository interface {
	// GetByID retrieves a lawyer by its unique ID.
	GetByID(id string) (*models.Lawyer, error)
	// GetByEmail retrieves a lawyer by its email address.
	GetByEmail(email string) (*models.Lawyer, error)
	// Search retrieves lawyers matching the query, sorted best first.
	Search(query DirectoryQuery) ([]models.Lawyer, error)
	// Count returns the number of stored profiles.
	Count() (int64, error)
	// CreateMany inserts profiles in bulk (catalog seeding).
	CreateMany(lawyers []models.Lawyer) error
}
