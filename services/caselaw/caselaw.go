package caselaw

import (
	"fmt"

	caselawRepo "wukala/database/repository/caselaw"
	"wukala/models"
	"wukala/utils"

	"go.uber.org/zap"
)

// Search retrieves cases matching the query.
func (s *DefaultCaseLawService) Search(query models.CaseSearchQuery) ([]models.CaseLaw, error) {
	cases, err := s.Repo.Search(query)
	if err != nil {
		utils.GetLogger().Error("Search: failed to search case law", zap.Error(err))
		return nil, fmt.Errorf("failed to search case law, please try again")
	}
	return cases, nil
}

// GetByID retrieves a single case.
func (s *DefaultCaseLawService) GetByID(id string) (*models.CaseLaw, error) {
	cl, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: failed to fetch case", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch case, please try again")
	}
	if cl == nil {
		return nil, fmt.Errorf("case not found")
	}
	return cl, nil
}

// SeedCatalog inserts the built-in case-law catalog when the collection is
// empty. Failures are logged, not fatal.
func SeedCatalog(repo caselawRepo.CaseLawRepository) {
	n, err := repo.Count()
	if err != nil {
		utils.GetLogger().Warn("SeedCatalog: count failed", zap.Error(err))
		return
	}
	if n > 0 {
		return
	}
	if err := repo.CreateMany(caseCatalog()); err != nil {
		utils.GetLogger().Warn("SeedCatalog: insert failed", zap.Error(err))
		return
	}
	utils.GetLogger().Sugar().Infof("Seeded case-law corpus with %d cases", len(caseCatalog()))
}
