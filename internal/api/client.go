package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"postdeck/internal/app/client/config"
	"postdeck/internal/domain/post"
	"postdeck/internal/storage"
)

var (
	// ErrRemote marks a transport failure or a non-2xx response.
	ErrRemote = errors.New("remote request failed")
	// ErrNotInCache marks a remote failure with no usable cached fallback.
	ErrNotInCache = errors.New("not found in cache")
)

// Client talks to the remote posts API and falls back to the local cache
// snapshot when the network is unavailable. None of its failures are fatal:
// the worst case is a descriptive error and continued work on stale data.
type Client struct {
	client     *http.Client
	store      storage.Store
	log        *slog.Logger
	baseURL    string
	cacheTTL   time.Duration
	userAgent  string
	retryDelay time.Duration
}

func NewClient(cfg *config.Config, store storage.Store, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client:     client,
		store:      store,
		log:        log,
		baseURL:    cfg.APIBaseURL,
		cacheTTL:   cfg.CacheTTL,
		userAgent:  "Postdeck-Client/1.0",
		retryDelay: DefaultInitialDelay,
	}
}

// FetchPosts loads the full posts collection. A successful response refreshes
// the cache snapshot; a failed one falls back to a non-expired snapshot.
func (c *Client) FetchPosts(ctx context.Context) ([]post.Post, error) {
	var posts []post.Post
	if err := c.getJSON(ctx, "/posts", &posts); err != nil {
		if cached, ok := c.readPostsCache(); ok {
			c.log.Warn("serving posts from cache", "error", err)
			return cached, nil
		}
		return nil, fmt.Errorf("%w: posts unavailable and no cached copy: %w", ErrNotInCache, err)
	}

	c.writePostsCache(posts)
	return posts, nil
}

// FetchPost loads a single post, falling back to a scan of the cached
// collection when the request fails.
func (c *Client) FetchPost(ctx context.Context, id int) (post.Post, error) {
	var p post.Post
	if err := c.getJSON(ctx, "/posts/"+strconv.Itoa(id), &p); err != nil {
		if cached, ok := c.readPostsCache(); ok {
			for _, candidate := range cached {
				if candidate.ID == id {
					c.log.Warn("serving post from cache", "id", id, "error", err)
					return candidate, nil
				}
			}
		}
		return post.Post{}, fmt.Errorf("%w: post %d unavailable and not cached: %w", ErrNotInCache, id, err)
	}

	return p, nil
}

// FetchPostsByUser loads one author's posts, filtering the cached collection
// on failure.
func (c *Client) FetchPostsByUser(ctx context.Context, userID int) ([]post.Post, error) {
	var posts []post.Post
	if err := c.getJSON(ctx, "/posts?userId="+strconv.Itoa(userID), &posts); err != nil {
		if cached, ok := c.readPostsCache(); ok {
			var filtered []post.Post
			for _, candidate := range cached {
				if candidate.UserID == userID {
					filtered = append(filtered, candidate)
				}
			}
			c.log.Warn("serving user's posts from cache", "userId", userID, "error", err)
			return filtered, nil
		}
		return nil, fmt.Errorf("%w: posts of user %d unavailable and not cached: %w", ErrNotInCache, userID, err)
	}

	return posts, nil
}

// FetchUsers loads the authors collection, with the same snapshot fallback
// as FetchPosts.
func (c *Client) FetchUsers(ctx context.Context) ([]post.User, error) {
	var users []post.User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		if cached, ok := c.readUsersCache(); ok {
			c.log.Warn("serving users from cache", "error", err)
			return cached, nil
		}
		return nil, fmt.Errorf("%w: users unavailable and no cached copy: %w", ErrNotInCache, err)
	}

	c.writeUsersCache(users)
	return users, nil
}

// UpdatePost sends the edit to the remote API and persists it as a local
// overlay either way. The remote API does not retain writes, so the overlay
// is authoritative and the call never fails.
func (c *Client) UpdatePost(ctx context.Context, id int, patch post.Patch) post.Overlay {
	err := Retry(ctx, DefaultMaxAttempts, c.retryDelay, func() error {
		return c.putJSON(ctx, "/posts/"+strconv.Itoa(id), patch)
	})
	if err != nil {
		c.log.Warn("remote update failed, keeping local edit only", "id", id, "error", err)
	}

	overlay := post.Overlay{Data: patch, Timestamp: time.Now().UTC()}
	post.SaveOverlay(c.store, id, overlay)

	return overlay
}

// MergedPosts returns the collection with local edits overlaid.
func (c *Client) MergedPosts(ctx context.Context) ([]post.Post, error) {
	posts, err := c.FetchPosts(ctx)
	if err != nil {
		return nil, err
	}
	return post.MergeAll(posts, post.LoadOverlays(c.store)), nil
}

// MergedPostsByUser returns one author's posts with local edits overlaid.
func (c *Client) MergedPostsByUser(ctx context.Context, userID int) ([]post.Post, error) {
	posts, err := c.FetchPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return post.MergeAll(posts, post.LoadOverlays(c.store)), nil
}

// MergedPost returns one post with its local edit overlaid, if any.
func (c *Client) MergedPost(ctx context.Context, id int) (post.Post, error) {
	p, err := c.FetchPost(ctx, id)
	if err != nil {
		return post.Post{}, err
	}

	if overlay, ok := post.LoadOverlay(c.store, id); ok {
		return post.MergeOne(p, &overlay.Data), nil
	}
	return p, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrRemote, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("sending request", "method", "GET", "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}

	return c.parseResponse(resp, dest)
}

func (c *Client) putJSON(ctx context.Context, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request body: %w", ErrRemote, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrRemote, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("sending request", "method", "PUT", "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}

	return c.parseResponse(resp, nil)
}

func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", ErrRemote, err)
	}

	c.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: server returned status %d", ErrRemote, resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: failed to parse response: %w", ErrRemote, err)
		}
	}

	return nil
}
