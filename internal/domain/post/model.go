package post

import "time"

// Post is the canonical record served by the remote collection.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// User is an author record from the remote users collection.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Patch is a partial or full local edit of a post. Nil fields are absent
// and keep the canonical value on merge.
type Patch struct {
	UserID *int    `json:"userId,omitempty"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
}

// Overlay is a locally persisted edit that takes precedence over the
// canonical copy of the same post.
type Overlay struct {
	Data      Patch     `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// PatchOf builds a full patch from a post, used when an edit replaces
// every editable field.
func PatchOf(p Post) Patch {
	userID := p.UserID
	title := p.Title
	body := p.Body
	return Patch{UserID: &userID, Title: &title, Body: &body}
}
