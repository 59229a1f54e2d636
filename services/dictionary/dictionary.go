package dictionary

import (
	"sort"
	"strings"

	"wukala/models"
)

// All returns every term, alphabetically.
func (s *DefaultDictionaryService) All() []models.DictionaryTerm {
	terms := legalTerms()
	sort.Slice(terms, func(i, j int) bool {
		return strings.ToLower(terms[i].Term) < strings.ToLower(terms[j].Term)
	})
	return terms
}

// Lookup finds a term by name, case-insensitive.
func (s *DefaultDictionaryService) Lookup(term string) *models.DictionaryTerm {
	for _, t := range legalTerms() {
		if strings.EqualFold(t.Term, term) {
			found := t
			return &found
		}
	}
	return nil
}

// ByLetter returns the terms starting with the given letter.
func (s *DefaultDictionaryService) ByLetter(letter string) []models.DictionaryTerm {
	if letter == "" {
		return nil
	}
	prefix := strings.ToLower(letter[:1])

	var out []models.DictionaryTerm
	for _, t := range s.All() {
		if strings.HasPrefix(strings.ToLower(t.Term), prefix) {
			out = append(out, t)
		}
	}
	return out
}
