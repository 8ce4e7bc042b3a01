package storage

import "strconv"

// Persisted key namespace. One session singleton, one cache snapshot per
// collection endpoint and one overlay key per edited post.
const (
	SessionKey       = "user_session"
	PostsCacheKey    = "posts_cache"
	UsersCacheKey    = "users_cache"
	EditedPostPrefix = "edited_post_"
)

// EditedPostKey builds the overlay key for a post id.
func EditedPostKey(id int) string {
	return EditedPostPrefix + strconv.Itoa(id)
}

// Store is a persistent JSON key/value store. Storage faults never reach the
// caller: a failing Set leaves prior state unchanged, a failing Get behaves
// as if the key were absent. Implementations log faults instead.
type Store interface {
	// Set serializes value as JSON and stores it under key.
	Set(key string, value any)
	// Get deserializes the value under key into dest and reports whether
	// the key was present and readable.
	Get(key string, dest any) bool
	// Remove deletes the key if present.
	Remove(key string)
	// Clear drops every key.
	Clear()
	// KeysWithPrefix lists all stored keys starting with prefix.
	KeysWithPrefix(prefix string) []string

	Close() error
}
