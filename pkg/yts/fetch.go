package yts

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one search page fetch.
const DefaultTimeout = 12 * time.Second

// maxBodySize caps how much of a response we read. Search pages run around
// 1-2 MB; anything larger is not a search page.
const maxBodySize = 8 * 1024 * 1024

// newHTTPClient creates an HTTP client with settings suitable for scraping
// the search page. The client is shared across searches for connection
// pooling and holds no per-call state.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// fetch performs a single GET and returns the body and status code. One
// outbound call per invocation, no retries; retry policy belongs to the
// caller. Transport failures return a NetworkError, non-2xx responses an
// HTTPError with the status.
func fetch(ctx context.Context, client *http.Client, rawURL string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, &NetworkError{Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &HTTPError{Status: resp.StatusCode}
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Err: err}
	}
	return body, resp.StatusCode, nil
}

// readBody reads the response body, decompressing gzip when the server sent
// it. Setting Accept-Encoding by hand disables the transport's transparent
// decompression, so it is handled here.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return io.ReadAll(io.LimitReader(r, maxBodySize))
}
