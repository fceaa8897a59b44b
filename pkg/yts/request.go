package yts

import (
	"fmt"
	"net/url"
	"time"
)

// ResultType selects which kind of content a search returns.
type ResultType string

const (
	TypeVideo    ResultType = "video"
	TypeChannel  ResultType = "channel"
	TypePlaylist ResultType = "playlist"
)

// Order selects the ranking of search results.
type Order string

const (
	OrderRelevance Order = "relevance"
	OrderDate      Order = "date"
	OrderViewCount Order = "viewCount"
	OrderRating    Order = "rating"
)

// DurationFilter restricts video results by length. Ignored for channel and
// playlist searches.
type DurationFilter string

const (
	DurationShort  DurationFilter = "short"  // under 4 minutes
	DurationMedium DurationFilter = "medium" // 4-20 minutes
	DurationLong   DurationFilter = "long"   // over 20 minutes
)

// SearchRequest describes one search. Zero values mean "unset": Type
// defaults to video and MaxResults to DefaultMaxResults.
type SearchRequest struct {
	Query           string
	Type            ResultType
	MaxResults      int
	Order           Order
	PublishedAfter  time.Time
	PublishedBefore time.Time
	Duration        DurationFilter
	Region          string // 2-letter country code, e.g. "US"
	ChannelID       string // restrict search to one channel
}

// DefaultMaxResults is used when SearchRequest.MaxResults is zero.
const DefaultMaxResults = 20

// sp filter parameters of the anonymous search page. Values are
// base64-encoded search protobufs; url.Values escapes the padding.
const (
	spVideos    = "EgIQAQ=="
	spChannels  = "EgIQAg=="
	spPlaylists = "EgIQAw=="

	spOrderDate      = "CAI="
	spOrderViewCount = "CAM="
	spOrderRating    = "CAE="

	spDurationShort  = "EgIYAQ=="
	spDurationMedium = "EgIYAw=="
	spDurationLong   = "EgIYAg=="
)

// withDefaults fills unset fields.
func (r SearchRequest) withDefaults() SearchRequest {
	if r.Type == "" {
		r.Type = TypeVideo
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	if r.Order == "" {
		r.Order = OrderRelevance
	}
	return r
}

// validate checks the request before any network call. Call after
// withDefaults.
func (r SearchRequest) validate() error {
	if r.Query == "" {
		return &InvalidRequestError{Reason: "query cannot be empty"}
	}
	if r.MaxResults <= 0 {
		return &InvalidRequestError{Reason: fmt.Sprintf("max results must be positive, got %d", r.MaxResults)}
	}
	switch r.Type {
	case TypeVideo, TypeChannel, TypePlaylist:
	default:
		return &InvalidRequestError{Reason: fmt.Sprintf("unknown result type %q", r.Type)}
	}
	switch r.Order {
	case OrderRelevance, OrderDate, OrderViewCount, OrderRating:
	default:
		return &InvalidRequestError{Reason: fmt.Sprintf("unknown order %q", r.Order)}
	}
	switch r.Duration {
	case "", DurationShort, DurationMedium, DurationLong:
	default:
		return &InvalidRequestError{Reason: fmt.Sprintf("unknown duration filter %q", r.Duration)}
	}
	if !r.PublishedAfter.IsZero() && !r.PublishedBefore.IsZero() && r.PublishedAfter.After(r.PublishedBefore) {
		return &InvalidRequestError{Reason: "published-after must not be later than published-before"}
	}
	return nil
}

// buildURL translates the request into the search page URL and request
// headers. YouTube serves degraded markup to unrecognized clients, so a
// realistic browser User-Agent is mandatory.
//
// The anonymous page accepts a single sp filter at a time; the result-type
// filter takes precedence over order and duration. Exact publish-date
// bounds have no anonymous sp encoding and are validated but not sent.
func (r SearchRequest) buildURL(base, userAgent string) (string, map[string]string) {
	params := url.Values{}

	var searchURL string
	if r.ChannelID != "" {
		// Channel-scoped search uses the channel's own search path.
		searchURL = base + "/channel/" + url.PathEscape(r.ChannelID) + "/search"
		params.Set("query", r.Query)
	} else {
		searchURL = base + "/results"
		params.Set("search_query", r.Query)

		if sp := r.spFilter(); sp != "" {
			params.Set("sp", sp)
		}
	}

	if r.Region != "" {
		params.Set("gl", r.Region)
	}

	headers := map[string]string{
		"User-Agent":      userAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
	return searchURL + "?" + params.Encode(), headers
}

// spFilter picks the sp parameter: result type first, then duration (videos
// only), then order.
func (r SearchRequest) spFilter() string {
	switch r.Type {
	case TypeChannel:
		return spChannels
	case TypePlaylist:
		return spPlaylists
	}

	// Video search: duration and order are alternatives to the type filter.
	switch r.Duration {
	case DurationShort:
		return spDurationShort
	case DurationMedium:
		return spDurationMedium
	case DurationLong:
		return spDurationLong
	}
	switch r.Order {
	case OrderDate:
		return spOrderDate
	case OrderViewCount:
		return spOrderViewCount
	case OrderRating:
		return spOrderRating
	}
	return spVideos
}
