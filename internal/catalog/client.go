// Package catalog is the client for the song lookup service.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/errors"
)

const (
	// DefaultPageSize is used when the caller passes no page size.
	DefaultPageSize = 20

	// Retry configuration for transient errors
	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Client is a song catalog API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	verbose    bool
	logFunc    func(format string, args ...interface{})
}

// New creates a new catalog client for the given API base URL.
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// SetVerbose enables verbose logging.
func (c *Client) SetVerbose(verbose bool, logFunc func(format string, args ...interface{})) {
	c.verbose = verbose
	c.logFunc = logFunc
}

func (c *Client) log(format string, args ...interface{}) {
	if c.verbose && c.logFunc != nil {
		c.logFunc(format, args...)
	}
}

// SearchResult is one page of tracks matching a query.
type SearchResult struct {
	Items      []core.Track
	Pagination Pagination
}

// Search queries the catalog. Page is 1-based; pageSize falls back to
// DefaultPageSize.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) (*SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))

	var resp searchResponse
	if err := c.get(ctx, "/songs/search?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSearchFailed, err)
	}

	items := make([]core.Track, len(resp.Songs))
	for i, s := range resp.Songs {
		items[i] = convertSong(s)
	}

	return &SearchResult{Items: items, Pagination: resp.Pagination}, nil
}

// get performs a GET request with retry on transient failures.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			wait := baseRetryWait * time.Duration(1<<(attempt-1))
			c.log("retrying %s in %v (attempt %d)", path, wait, attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		retriable, err := c.doGet(ctx, path, result)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retriable {
			return err
		}
	}

	return lastErr
}

func (c *Client) doGet(ctx context.Context, path string, result interface{}) (retriable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%w: %v", errors.ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("%w: %v", errors.ErrNetworkError, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if result == nil {
			return false, nil
		}
		if err := json.Unmarshal(body, result); err != nil {
			return false, fmt.Errorf("decoding response: %w", err)
		}
		return false, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		return true, errors.ErrRateLimited

	case resp.StatusCode >= 500:
		return true, fmt.Errorf("server error: status %d", resp.StatusCode)

	default:
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return false, fmt.Errorf("catalog: %s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return false, fmt.Errorf("catalog: status %d", resp.StatusCode)
	}
}

// convertSong converts a catalog song to a core track.
func convertSong(s Song) core.Track {
	return core.Track{
		ID:         s.ID,
		Title:      s.Title,
		Artist:     s.Artist,
		Album:      s.Album,
		Duration:   time.Duration(s.DurationSeconds * float64(time.Second)),
		RemoteURL:  s.AudioURL,
		ArtworkURL: s.ArtworkURL,
	}
}
