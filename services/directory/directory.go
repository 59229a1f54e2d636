package directory

import (
	"fmt"
	"sort"
	"strings"

	lawyerRepo "wukala/database/repository/lawyer"
	"wukala/models"
	"wukala/utils"

	"go.uber.org/zap"
)

// List retrieves profiles matching the query.
func (s *DefaultDirectoryService) List(query lawyerRepo.DirectoryQuery) ([]models.Lawyer, error) {
	lawyers, err := s.Repo.Search(query)
	if err != nil {
		utils.GetLogger().Error("List: failed to search lawyers", zap.Error(err))
		return nil, fmt.Errorf("failed to list lawyers, please try again")
	}
	return lawyers, nil
}

// GetByID retrieves a single profile.
func (s *DefaultDirectoryService) GetByID(id string) (*models.Lawyer, error) {
	lawyer, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: failed to fetch lawyer", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch lawyer, please try again")
	}
	if lawyer == nil {
		return nil, fmt.Errorf("lawyer not found")
	}
	return lawyer, nil
}

// Cities returns the distinct cities present in the directory, sorted.
func (s *DefaultDirectoryService) Cities() ([]string, error) {
	lawyers, err := s.Repo.Search(lawyerRepo.DirectoryQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cities, please try again")
	}

	seen := make(map[string]string)
	for _, l := range lawyers {
		seen[strings.ToLower(l.City)] = l.City
	}
	cities := make([]string, 0, len(seen))
	for _, city := range seen {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities, nil
}

// SeedCatalog inserts the built-in directory catalog when the collection is
// empty. Failures are logged, not fatal; the directory just starts empty.
func SeedCatalog(repo lawyerRepo.LawyerRepository) {
	n, err := repo.Count()
	if err != nil {
		utils.GetLogger().Warn("SeedCatalog: count failed", zap.Error(err))
		return
	}
	if n > 0 {
		return
	}
	if err := repo.CreateMany(lawyerCatalog()); err != nil {
		utils.GetLogger().Warn("SeedCatalog: insert failed", zap.Error(err))
		return
	}
	utils.GetLogger().Sugar().Infof("Seeded lawyer directory with %d profiles", len(lawyerCatalog()))
}
