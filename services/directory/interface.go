package directory

import (
	lawyerRepo "wukala/database/repository/lawyer"
	"wukala/models"
)

// DirectoryService defines business logic for the lawyer directory.
type DirectoryService interface {
	// List retrieves profiles matching the query, sorted best first.
	List(query lawyerRepo.DirectoryQuery) ([]models.Lawyer, error)
	// GetByID retrieves a single profile.
	GetByID(id string) (*models.Lawyer, error)
	// Cities returns the distinct cities present in the directory.
	Cities() ([]string, error)
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Repo lawyerRepo.LawyerRepository
}
