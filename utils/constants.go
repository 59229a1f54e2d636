// File: utils/constants.go
package utils

// SessionKeyPrefix is the key prefix for mirrored session records.
const SessionKeyPrefix = "session:"

// ApplicationLedgerKey is the key holding the lawyer application ledger,
// a JSON array ordered newest first.
const ApplicationLedgerKey = "applications"

// OnboardingKeyPrefix is the key prefix for onboarding-seen flags. The flag
// is a presence/absence sentinel, the stored value carries no meaning.
const OnboardingKeyPrefix = "onboarding:"

// BookmarkKeyPrefix is the key prefix for bookmarked case-law identifier sets.
const BookmarkKeyPrefix = "bookmarks:"
