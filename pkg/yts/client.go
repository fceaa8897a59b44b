// Package yts searches YouTube through its public web interface: no API
// key, no quota. It builds a search page URL, fetches the HTML, extracts
// the embedded initial-data JSON (falling back to markup scanning when the
// blob is missing) and normalizes the items into typed results.
//
// The upstream page format is not under our control; extraction degrades
// gracefully but cannot be guaranteed against arbitrary upstream changes.
package yts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// defaultUserAgent must look like a real browser: the anonymous web path
// rejects or serves degraded markup to unrecognized clients.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

const defaultBaseURL = "https://www.youtube.com"

// Client searches YouTube's public search page. The zero configuration is
// usable; a Client is safe for concurrent use, each search is self-contained
// and only the pooled HTTP client is shared.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
	baseURL    string
	userAgent  string
	maxResults int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-search fetch timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = newHTTPClient(d) }
}

// WithUserAgent overrides the browser User-Agent sent with each fetch.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithMaxResults sets the default result cap used when a request leaves
// MaxResults unset.
func WithMaxResults(n int) Option {
	return func(c *Client) { c.maxResults = n }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a search client. No configuration is required.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: newHTTPClient(DefaultTimeout),
		log:        slog.Default(),
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one search and returns canonical results in page ranking
// order, at most req.MaxResults of them. Failures are reported as
// *InvalidRequestError for bad parameters and *SearchError otherwise; the
// underlying *NetworkError or *HTTPError stays reachable through errors.As.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Result, error) {
	if req.MaxResults == 0 {
		req.MaxResults = c.maxResults
	}
	req = req.withDefaults()
	if err := req.validate(); err != nil {
		return nil, err
	}

	searchURL, headers := req.buildURL(c.baseURL, c.userAgent)
	c.log.Debug("fetching search page",
		slog.String("url", searchURL),
		slog.String("type", string(req.Type)),
	)

	body, status, err := fetch(ctx, c.httpClient, searchURL, headers)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return nil, &SearchError{
				Message:      fmt.Sprintf("HTTP %d: failed to fetch search results", httpErr.Status),
				ResponseCode: httpErr.Status,
				Err:          err,
			}
		}
		return nil, &SearchError{Message: "search failed: " + err.Error(), Err: err}
	}

	items, tier := extractInitialData(body, req.Type, req.MaxResults)
	if tier != tierFound {
		c.log.Debug("initial data unusable, scanning markup",
			slog.Bool("parse_failed", tier == tierParseFailed),
			slog.Int("status", status),
		)
		items = extractFallback(body, req.Type, req.MaxResults)
	}

	results := normalizeItems(items, req.Type, req.MaxResults)
	c.log.Debug("search done",
		slog.Int("raw_items", len(items)),
		slog.Int("results", len(results)),
	)
	return results, nil
}

// SearchVideos searches videos only. maxResults <= 0 uses the client
// default.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) ([]VideoResult, error) {
	results, err := c.Search(ctx, SearchRequest{Query: query, Type: TypeVideo, MaxResults: clampMax(maxResults)})
	if err != nil {
		return nil, err
	}
	videos := make([]VideoResult, 0, len(results))
	for _, r := range results {
		if v, ok := r.(VideoResult); ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

// SearchChannels searches channels only.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int) ([]ChannelResult, error) {
	results, err := c.Search(ctx, SearchRequest{Query: query, Type: TypeChannel, MaxResults: clampMax(maxResults)})
	if err != nil {
		return nil, err
	}
	channels := make([]ChannelResult, 0, len(results))
	for _, r := range results {
		if ch, ok := r.(ChannelResult); ok {
			channels = append(channels, ch)
		}
	}
	return channels, nil
}

// SearchPlaylists searches playlists only.
func (c *Client) SearchPlaylists(ctx context.Context, query string, maxResults int) ([]PlaylistResult, error) {
	results, err := c.Search(ctx, SearchRequest{Query: query, Type: TypePlaylist, MaxResults: clampMax(maxResults)})
	if err != nil {
		return nil, err
	}
	playlists := make([]PlaylistResult, 0, len(results))
	for _, r := range results {
		if p, ok := r.(PlaylistResult); ok {
			playlists = append(playlists, p)
		}
	}
	return playlists, nil
}

func clampMax(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
