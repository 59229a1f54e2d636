package caselaw

import (
	"context"
	"testing"

	"wukala/database/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookmarkService() *DefaultCaseLawService {
	return &DefaultCaseLawService{Store: kv.NewMemoryStore()}
}

func TestToggleBookmarkAddsThenRemoves(t *testing.T) {
	s := newBookmarkService()

	got := s.ToggleBookmark("h1", "cl-001")
	assert.Equal(t, []string{"cl-001"}, got)

	got = s.ToggleBookmark("h1", "cl-002")
	assert.Equal(t, []string{"cl-001", "cl-002"}, got)

	got = s.ToggleBookmark("h1", "cl-001")
	assert.Equal(t, []string{"cl-002"}, got)
}

func TestDoubleToggleRestoresOriginalSet(t *testing.T) {
	s := newBookmarkService()

	s.ToggleBookmark("h1", "cl-001")
	s.ToggleBookmark("h1", "cl-002")
	before := s.Bookmarks("h1")

	s.ToggleBookmark("h1", "cl-003")
	s.ToggleBookmark("h1", "cl-003")

	assert.Equal(t, before, s.Bookmarks("h1"))
}

func TestBookmarksAreScopedPerHandle(t *testing.T) {
	s := newBookmarkService()

	s.ToggleBookmark("h1", "cl-001")
	assert.Empty(t, s.Bookmarks("h2"))
}

func TestCorruptBookmarkSetReadsAsEmpty(t *testing.T) {
	s := newBookmarkService()
	require.NoError(t, s.Store.Set(context.Background(), "bookmarks:h1", []byte("not json")))

	assert.Empty(t, s.Bookmarks("h1"))
	assert.Equal(t, []string{"cl-001"}, s.ToggleBookmark("h1", "cl-001"))
}
