package dictionary

import "wukala/models"

// DictionaryService defines lookups over the legal dictionary.
type DictionaryService interface {
	// All returns every term, alphabetically.
	All() []models.DictionaryTerm
	// Lookup finds a term by name, case-insensitive. Returns nil when absent.
	Lookup(term string) *models.DictionaryTerm
	// ByLetter returns the terms starting with the given letter.
	ByLetter(letter string) []models.DictionaryTerm
}

// DefaultDictionaryService is the production implementation; the catalog is
// compiled in.
type DefaultDictionaryService struct{}
