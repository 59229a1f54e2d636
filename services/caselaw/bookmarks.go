// File: wukala/services/caselaw/bookmarks.go
package caselaw

import (
	"context"
	"encoding/json"

	"wukala/utils"

	"go.uber.org/zap"
)

// loadBookmarks reads the handle's bookmark set. Absent or corrupt data
// reads as an empty set.
func (s *DefaultCaseLawService) loadBookmarks(key string) []string {
	data, err := s.Store.Get(context.Background(), key)
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		utils.GetLogger().Debug("bookmarks: discarding malformed set", zap.String("key", key))
		return nil
	}
	return ids
}

// ToggleBookmark flips the case's membership in the handle's bookmark set.
// Toggling the same ID twice restores the original set.
func (s *DefaultCaseLawService) ToggleBookmark(handle, caseID string) []string {
	key := utils.BookmarkKeyPrefix + handle
	ids := s.loadBookmarks(key)

	var out []string
	found := false
	for _, id := range ids {
		if id == caseID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, caseID)
	}

	data, err := json.Marshal(out)
	if err == nil {
		if err := s.Store.Set(context.Background(), key, data); err != nil {
			utils.GetLogger().Warn("bookmarks: write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out
}

// Bookmarks returns the handle's bookmarked case IDs.
func (s *DefaultCaseLawService) Bookmarks(handle string) []string {
	return s.loadBookmarks(utils.BookmarkKeyPrefix + handle)
}
