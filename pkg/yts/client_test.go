package yts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at a local test server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(WithHTTPClient(srv.Client()))
	c.baseURL = srv.URL
	return c, srv
}

func fixtureHandler(t *testing.T, name string, calls *atomic.Int64) http.Handler {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	})
}

func TestSearchEndToEnd(t *testing.T) {
	c, _ := newTestClient(t, fixtureHandler(t, "search_python.html", nil))

	results, err := c.Search(context.Background(), SearchRequest{
		Query:      "python programming",
		Type:       TypeVideo,
		MaxResults: 5,
	})
	require.NoError(t, err)
	require.Len(t, results, 5)

	wantTitles := []string{
		"Learn Python - Full Course for Beginners [Tutorial]",
		"Python Full Course for Beginners",
		"Python for Beginners - Learn Python in 1 Hour",
		"Python Tutorial - Python Full Course for Beginners",
		"Python {Dicts} & [Lists] Crash Course",
	}
	for i, result := range results {
		v, ok := result.(VideoResult)
		require.True(t, ok, "result %d is %T, want VideoResult", i, result)
		assert.Equal(t, wantTitles[i], v.Title)
		assert.NotEmpty(t, v.URL)
		assert.NotEmpty(t, v.ChannelTitle)
	}

	first := results[0].(VideoResult)
	require.NotNil(t, first.ViewCount)
	assert.Equal(t, int64(46_000_000), *first.ViewCount)
	require.NotNil(t, first.DurationSeconds)
	assert.Equal(t, 16012, *first.DurationSeconds) // 4:26:52
	assert.Equal(t, "https://i.ytimg.com/vi/rfscVS0vtbw/maxresdefault.jpg", first.ThumbnailURL)
}

func TestSearchMaxResultsCap(t *testing.T) {
	c, _ := newTestClient(t, fixtureHandler(t, "search_python.html", nil))

	for _, max := range []int{1, 3, 6, 50} {
		results, err := c.Search(context.Background(), SearchRequest{Query: "python", MaxResults: max})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), max, "MaxResults=%d", max)
	}
}

func TestSearchEmptyQueryNoFetch(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, fixtureHandler(t, "search_python.html", &calls))

	_, err := c.Search(context.Background(), SearchRequest{Query: ""})

	var invalidErr *InvalidRequestError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, int64(0), calls.Load(), "no network call may happen for an invalid request")
}

func TestSearchHTTPErrorSurfacesStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := c.Search(context.Background(), SearchRequest{Query: "python"})

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, http.StatusTooManyRequests, searchErr.ResponseCode)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr, "HTTPError must stay reachable through the wrap chain")
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
}

func TestSearchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewClient(WithHTTPClient(srv.Client()))
	c.baseURL = srv.URL
	srv.Close() // connection refused from here on

	_, err := c.Search(context.Background(), SearchRequest{Query: "python"})

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Zero(t, searchErr.ResponseCode, "no response obtained, code must be unset")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestSearchFallsBackWithoutMarker(t *testing.T) {
	page := `<html><body>` + // no ytInitialData assignment anywhere
		`<ytd-video-renderer>` +
		`<a id="video-title" title="Fallback Video" href="/watch?v=fbfbfbfbfbf">Fallback Video</a>` +
		`<ytd-channel-name><a href="/@fb">FB Channel</a></ytd-channel-name>` +
		`</ytd-video-renderer>` +
		`</body></html>`
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))

	results, err := c.Search(context.Background(), SearchRequest{Query: "python"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	v := results[0].(VideoResult)
	assert.Equal(t, "Fallback Video", v.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=fbfbfbfbfbf", v.URL)
}

func TestSearchEmptyPageYieldsNoResultsNoError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>before you continue</p></body></html>"))
	}))

	results, err := c.Search(context.Background(), SearchRequest{Query: "python"})
	require.NoError(t, err, "zero results is not an error")
	assert.Empty(t, results)
}

func TestSearchVideosConvenience(t *testing.T) {
	c, _ := newTestClient(t, fixtureHandler(t, "search_python.html", nil))

	videos, err := c.SearchVideos(context.Background(), "python programming", 3)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	for _, v := range videos {
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.URL)
	}
}

func TestSearchSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<html></html>"))
	}))

	_, err := c.Search(context.Background(), SearchRequest{Query: "python"})
	require.NoError(t, err)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotAccept, "text/html")
}
