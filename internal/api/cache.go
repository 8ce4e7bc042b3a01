package api

import (
	"time"

	"postdeck/internal/domain/post"
	"postdeck/internal/storage"
)

// PostsSnapshot is the cached posts collection with its fetch time.
type PostsSnapshot struct {
	Data      []post.Post `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// UsersSnapshot is the cached users collection with its fetch time.
type UsersSnapshot struct {
	Data      []post.User `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

func (c *Client) writePostsCache(posts []post.Post) {
	c.store.Set(storage.PostsCacheKey, PostsSnapshot{
		Data:      posts,
		Timestamp: time.Now().UTC(),
	})
}

// readPostsCache returns the cached collection if the snapshot is younger
// than the TTL. An expired snapshot is deleted, not just ignored.
func (c *Client) readPostsCache() ([]post.Post, bool) {
	var snap PostsSnapshot
	if !c.store.Get(storage.PostsCacheKey, &snap) {
		return nil, false
	}

	if c.expired(snap.Timestamp) {
		c.log.Debug("posts cache expired, evicting")
		c.store.Remove(storage.PostsCacheKey)
		return nil, false
	}

	return snap.Data, true
}

func (c *Client) writeUsersCache(users []post.User) {
	c.store.Set(storage.UsersCacheKey, UsersSnapshot{
		Data:      users,
		Timestamp: time.Now().UTC(),
	})
}

func (c *Client) readUsersCache() ([]post.User, bool) {
	var snap UsersSnapshot
	if !c.store.Get(storage.UsersCacheKey, &snap) {
		return nil, false
	}

	if c.expired(snap.Timestamp) {
		c.log.Debug("users cache expired, evicting")
		c.store.Remove(storage.UsersCacheKey)
		return nil, false
	}

	return snap.Data, true
}

func (c *Client) expired(timestamp time.Time) bool {
	return time.Since(timestamp) >= c.cacheTTL
}
