package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	s := &DefaultDictionaryService{}

	term := s.Lookup("khula")
	require.NotNil(t, term)
	assert.Equal(t, "Khula", term.Term)
	assert.Equal(t, "Family", term.Category)

	assert.Nil(t, s.Lookup("habeas data"))
}

func TestAllIsSortedAlphabetically(t *testing.T) {
	s := &DefaultDictionaryService{}

	terms := s.All()
	require.NotEmpty(t, terms)
	for i := 1; i < len(terms); i++ {
		assert.LessOrEqual(t,
			strings.ToLower(terms[i-1].Term),
			strings.ToLower(terms[i].Term))
	}
}

func TestByLetter(t *testing.T) {
	s := &DefaultDictionaryService{}

	ks := s.ByLetter("K")
	require.NotEmpty(t, ks)
	for _, term := range ks {
		assert.True(t, strings.HasPrefix(strings.ToLower(term.Term), "k"))
	}

	assert.Empty(t, s.ByLetter(""))
}
