package yts

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SearchRequest
		wantErr bool
	}{
		{"minimal valid", SearchRequest{Query: "python"}, false},
		{"empty query", SearchRequest{Query: ""}, true},
		{"negative max results", SearchRequest{Query: "python", MaxResults: -1}, true},
		{"unknown type", SearchRequest{Query: "python", Type: "livestream"}, true},
		{"unknown order", SearchRequest{Query: "python", Order: "alphabetical"}, true},
		{"unknown duration", SearchRequest{Query: "python", Duration: "huge"}, true},
		{
			"after later than before",
			SearchRequest{
				Query:           "python",
				PublishedAfter:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				PublishedBefore: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			true,
		},
		{
			"after before ordered",
			SearchRequest{
				Query:           "python",
				PublishedAfter:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
				PublishedBefore: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.withDefaults().validate()
			if tt.wantErr {
				var invalidErr *InvalidRequestError
				if !errors.As(err, &invalidErr) {
					t.Fatalf("err = %v, want *InvalidRequestError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	base := "https://www.youtube.com"

	parse := func(t *testing.T, raw string) *url.URL {
		t.Helper()
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("buildURL produced unparsable URL %q: %v", raw, err)
		}
		return u
	}

	t.Run("query escaped", func(t *testing.T) {
		req := SearchRequest{Query: "python programming & more"}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		u := parse(t, raw)
		if u.Path != "/results" {
			t.Errorf("path = %q", u.Path)
		}
		if got := u.Query().Get("search_query"); got != "python programming & more" {
			t.Errorf("search_query = %q", got)
		}
	})

	t.Run("video type filter", func(t *testing.T) {
		req := SearchRequest{Query: "python"}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		if got := parse(t, raw).Query().Get("sp"); got != spVideos {
			t.Errorf("sp = %q, want %q", got, spVideos)
		}
	})

	t.Run("playlist type filter wins over duration", func(t *testing.T) {
		req := SearchRequest{Query: "python", Type: TypePlaylist, Duration: DurationShort}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		if got := parse(t, raw).Query().Get("sp"); got != spPlaylists {
			t.Errorf("sp = %q, want %q (duration must be ignored for playlists)", got, spPlaylists)
		}
	})

	t.Run("video duration filter", func(t *testing.T) {
		req := SearchRequest{Query: "python", Duration: DurationLong}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		if got := parse(t, raw).Query().Get("sp"); got != spDurationLong {
			t.Errorf("sp = %q, want %q", got, spDurationLong)
		}
	})

	t.Run("video order filter", func(t *testing.T) {
		req := SearchRequest{Query: "python", Order: OrderViewCount}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		if got := parse(t, raw).Query().Get("sp"); got != spOrderViewCount {
			t.Errorf("sp = %q, want %q", got, spOrderViewCount)
		}
	})

	t.Run("region", func(t *testing.T) {
		req := SearchRequest{Query: "python", Region: "DE"}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		if got := parse(t, raw).Query().Get("gl"); got != "DE" {
			t.Errorf("gl = %q, want DE", got)
		}
	})

	t.Run("channel scoped path", func(t *testing.T) {
		req := SearchRequest{Query: "tutorial", ChannelID: "UCabcdef"}.withDefaults()
		raw, _ := req.buildURL(base, defaultUserAgent)
		u := parse(t, raw)
		if u.Path != "/channel/UCabcdef/search" {
			t.Errorf("path = %q", u.Path)
		}
		if got := u.Query().Get("query"); got != "tutorial" {
			t.Errorf("query = %q", got)
		}
		if strings.Contains(raw, "search_query") {
			t.Error("channel-scoped search must not use the global search param")
		}
	})

	t.Run("headers carry browser user agent", func(t *testing.T) {
		req := SearchRequest{Query: "python"}.withDefaults()
		_, headers := req.buildURL(base, defaultUserAgent)
		if !strings.Contains(headers["User-Agent"], "Mozilla/5.0") {
			t.Errorf("User-Agent = %q, want a realistic browser string", headers["User-Agent"])
		}
		if headers["Accept-Language"] == "" {
			t.Error("Accept-Language missing")
		}
	})
}
