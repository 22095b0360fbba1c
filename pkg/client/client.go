// Package client is a Go SDK for the HobbyVerse API. It mirrors the state
// handling of the web frontend: a subscribable auth store, session-scoped
// caches, and explicit refreshes instead of server push.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to a HobbyVerse server.
type Client struct {
	baseURL string
	http    *http.Client
	auth    *AuthStore

	mu        sync.Mutex
	userCache map[uint]UserSummary
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenStore persists the session token with the given store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.auth = NewAuthStore(store) }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
		auth:      NewAuthStore(&MemoryTokenStore{}),
		userCache: make(map[uint]UserSummary),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Auth exposes the session store for subscriptions and snapshots.
func (c *Client) Auth() *AuthStore {
	return c.auth
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.auth.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error == "" {
			errBody.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Signup registers a new account and opens a session. The user and stats
// snapshots are fetched eagerly so subscribers render a complete profile.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": name, "email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.openSession(ctx, resp)
	return &resp.User, nil
}

// Login authenticates and opens a session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.openSession(ctx, resp)
	return &resp.User, nil
}

func (c *Client) openSession(ctx context.Context, resp authResponse) {
	c.auth.SetSession(resp.Token, &resp.User)
	// Best-effort eager stats; a failure leaves Stats nil until the next
	// explicit refresh.
	if stats, err := c.MyStats(ctx); err == nil {
		c.auth.SetStats(stats)
	}
}

// Logout drops the token and every session-scoped cache.
func (c *Client) Logout() {
	c.auth.Clear()
	c.mu.Lock()
	c.userCache = make(map[uint]UserSummary)
	c.mu.Unlock()
}

// Me fetches the authenticated profile and updates the auth snapshot.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/user/me", nil, &user); err != nil {
		return nil, err
	}
	c.auth.SetUser(&user)
	return &user, nil
}

// UpdateMe updates the editable profile fields.
func (c *Client) UpdateMe(ctx context.Context, name, profilePicture string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPut, "/api/user/me", map[string]string{
		"name": name, "profile_picture": profilePicture,
	}, &user)
	if err != nil {
		return nil, err
	}
	c.auth.SetUser(&user)
	return &user, nil
}

// MyStats fetches the profile counters.
func (c *Client) MyStats(ctx context.Context) (*UserStats, error) {
	var stats UserStats
	if err := c.do(ctx, http.MethodGet, "/api/user/me/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RefreshStats re-fetches the counters and publishes them to subscribers.
// Call after follow, unfollow, or post creation; nothing pushes them.
func (c *Client) RefreshStats(ctx context.Context) error {
	stats, err := c.MyStats(ctx)
	if err != nil {
		return err
	}
	c.auth.SetStats(stats)
	return nil
}

// GetUser fetches a public profile, serving repeats from the session cache.
// The cache is only dropped on Logout; profile edits by other users during a
// session are not observed, matching the rendering layer's expectations.
func (c *Client) GetUser(ctx context.Context, id uint) (*UserSummary, error) {
	c.mu.Lock()
	if cached, ok := c.userCache[id]; ok {
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	var summary UserSummary
	if err := c.do(ctx, http.MethodGet, "/api/user/"+strconv.FormatUint(uint64(id), 10), nil, &summary); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.userCache[id] = summary
	c.mu.Unlock()
	return &summary, nil
}

// MyHobbies lists the caller's hobby names.
func (c *Client) MyHobbies(ctx context.Context) ([]string, error) {
	var hobbies []string
	if err := c.do(ctx, http.MethodGet, "/api/user/me/hobbies", nil, &hobbies); err != nil {
		return nil, err
	}
	return hobbies, nil
}

// AddHobby tags the caller with a hobby and returns the updated list.
func (c *Client) AddHobby(ctx context.Context, hobby string) ([]string, error) {
	var hobbies []string
	err := c.do(ctx, http.MethodPost, "/api/user/me/hobbies", map[string]string{"hobby": hobby}, &hobbies)
	if err != nil {
		return nil, err
	}
	return hobbies, nil
}

// RemoveHobby removes the caller's association with a hobby.
func (c *Client) RemoveHobby(ctx context.Context, hobby string) ([]string, error) {
	var hobbies []string
	err := c.do(ctx, http.MethodDelete, "/api/user/me/hobbies", map[string]string{"hobby": hobby}, &hobbies)
	if err != nil {
		return nil, err
	}
	return hobbies, nil
}

// FindUsersByHobby returns other users tagged with the exact hobby name.
func (c *Client) FindUsersByHobby(ctx context.Context, hobby string) ([]UserSummary, error) {
	var users []UserSummary
	path := "/api/user/find?hobby=" + url.QueryEscape(hobby)
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreatePost publishes a post with optional image and hobby tags.
func (c *Client) CreatePost(ctx context.Context, content, image string, hobbies []string) (*Post, error) {
	var post Post
	err := c.do(ctx, http.MethodPost, "/api/posts", map[string]any{
		"content": content, "image": image, "hobbies": hobbies,
	}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PostFilter narrows ListPosts. Zero values mean no filtering.
type PostFilter struct {
	UserID uint
	Hobby  string
}

// ListPosts fetches the feed newest first.
func (c *Client) ListPosts(ctx context.Context, filter PostFilter) ([]Post, error) {
	q := url.Values{}
	if filter.UserID != 0 {
		q.Set("user_id", strconv.FormatUint(uint64(filter.UserID), 10))
	}
	if filter.Hobby != "" {
		q.Set("hobby", filter.Hobby)
	}
	path := "/api/posts"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// LikePost likes a post. Liking twice is harmless.
func (c *Client) LikePost(ctx context.Context, postID uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), nil, nil)
}

// CommentOnPost adds a comment.
func (c *Client) CommentOnPost(ctx context.Context, postID uint, content string) (*Comment, error) {
	var comment Comment
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comment", postID),
		map[string]string{"content": content}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments fetches a post's comments oldest first.
func (c *Client) ListComments(ctx context.Context, postID uint) ([]Comment, error) {
	var comments []Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", postID), nil, &comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// SharePost re-posts the source under the caller's name.
func (c *Client) SharePost(ctx context.Context, postID uint) (*Post, error) {
	var post Post
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/share", postID), nil, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Follow follows a user, then the caller should RefreshStats.
func (c *Client) Follow(ctx context.Context, userID uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/social/follow/%d", userID), nil, nil)
}

// Unfollow removes the follow edge.
func (c *Client) Unfollow(ctx context.Context, userID uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/social/unfollow/%d", userID), nil, nil)
}

// Following returns the ids the caller follows.
func (c *Client) Following(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := c.do(ctx, http.MethodGet, "/api/social/following", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FollowingDetails returns the public view of everyone the caller follows.
func (c *Client) FollowingDetails(ctx context.Context) ([]UserSummary, error) {
	var users []UserSummary
	if err := c.do(ctx, http.MethodGet, "/api/social/following/details", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FollowersDetails returns the public view of the caller's followers.
func (c *Client) FollowersDetails(ctx context.Context) ([]UserSummary, error) {
	var users []UserSummary
	if err := c.do(ctx, http.MethodGet, "/api/social/followers/details", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Notifications fetches the caller's inbox newest first.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifs []Notification
	if err := c.do(ctx, http.MethodGet, "/api/social/notifications", nil, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/social/notifications/%d/read", id), nil, nil)
}

// DecodeData parses the notification payload.
func (n Notification) DecodeData() (NotificationData, error) {
	var data NotificationData
	err := json.Unmarshal([]byte(n.Data), &data)
	return data, err
}

// Upload sends a file and returns the URL path it is served under.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.auth.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return "", &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}
