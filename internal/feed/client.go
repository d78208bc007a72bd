package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/roster/internal/roster"
)

// Fetcher supplies the current friends list.
// This interface is implemented by *Client and *File and can be used for testing.
type Fetcher interface {
	FetchFriends(ctx context.Context) ([]roster.Entity, error)
}

// Ensure both sources implement Fetcher at compile time.
var (
	_ Fetcher = (*Client)(nil)
	_ Fetcher = (*File)(nil)
)

// Client talks to the friends feed HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultFeedURL   = "127.0.0.1:7488"
	defaultUserAgent = "roster/0.1"
	requestTimeout   = 5 * time.Second
	friendsPath      = "/api/friends"
)

// NewClient builds a Client for the feed at feedURL (host:port or full URL).
func NewClient(feedURL string) (*Client, error) {
	base, err := parseBaseURL(feedURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchFriends retrieves the friends list and maps it to entities.
func (c *Client) FetchFriends(ctx context.Context) ([]roster.Entity, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload FriendsResponse
	if err := c.do(ctx, http.MethodGet, friendsPath, &payload); err != nil {
		return nil, err
	}
	return Entities(payload.Friends), nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	return decode(resp.Body, dest)
}

func decode(r io.Reader, dest any) error {
	if err := json.NewDecoder(r).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(feedURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(feedURL)
	if trimmed == "" {
		trimmed = defaultFeedURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed_url %q: %w", feedURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// File reads the friends payload from disk on every fetch, for offline use.
type File struct {
	Path string
}

// FetchFriends implements Fetcher.
func (f *File) FetchFriends(ctx context.Context) ([]roster.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(f.Path)
}

// LoadFile decodes a saved /api/friends payload.
func LoadFile(path string) ([]roster.Entity, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open friends file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var payload FriendsResponse
	if err := decode(file, &payload); err != nil {
		return nil, err
	}
	return Entities(payload.Friends), nil
}
