package yts

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fallback extraction: when the initial-data blob is missing or unusable,
// scan the markup for result cards instead. This path only sees what the
// server actually rendered as HTML — lazy-rendered results are invisible to
// it, so it may under-return. Known-degraded by design of the upstream
// page, not a bug here.

var (
	watchHrefRE = regexp.MustCompile(`[?&]v=([^&]+)`)
	listHrefRE  = regexp.MustCompile(`[?&]list=([^&]+)`)
)

// extractFallback scans markup for result cards of the wanted type and
// recovers the same raw item records as the structured tier, with plain
// string values. Never errors; unparsable markup yields zero items.
func extractFallback(body []byte, t ResultType, limit int) []rawItem {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	switch t {
	case TypeChannel:
		return fallbackChannels(doc, limit)
	case TypePlaylist:
		return fallbackPlaylists(doc, limit)
	default:
		return fallbackVideos(doc, limit)
	}
}

func fallbackVideos(doc *goquery.Document, limit int) []rawItem {
	var items []rawItem
	doc.Find("ytd-video-renderer, div[data-context-item-id], .yt-lockup-video").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		videoID, _ := s.Attr("data-context-item-id")
		if videoID == "" {
			if href, ok := s.Find(`a[href*="watch?v="]`).First().Attr("href"); ok {
				if m := watchHrefRE.FindStringSubmatch(href); len(m) > 1 {
					videoID = m[1]
				}
			}
		}
		if videoID == "" {
			return true
		}

		item := rawItem{
			"videoId": videoID,
			"title":   cardTitle(s.Find("#video-title, h3 a, .video-title").First()),
		}
		if v := cardText(s, "ytd-channel-name a, .ytd-channel-name a, .channel-name"); v != "" {
			item["ownerText"] = v
		}
		if v := cardText(s, "ytd-thumbnail-overlay-time-status-renderer, .ytd-thumbnail-overlay-time-status-renderer, .duration"); v != "" {
			item["lengthText"] = v
		}
		if v := cardText(s, "#metadata-line span, .video-view-count"); strings.Contains(v, "view") {
			item["viewCountText"] = v
		}
		if v := cardImage(s); v != "" {
			item["thumbnail"] = v
		}
		items = append(items, item)
		return len(items) < limit
	})
	return items
}

func fallbackChannels(doc *goquery.Document, limit int) []rawItem {
	var items []rawItem
	doc.Find("ytd-channel-renderer, .ytd-channel-renderer, .yt-lockup-channel").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Find(`a[href*="/channel/"], a[href*="/c/"], a[href*="/@"]`).First().Attr("href")
		if !ok {
			return true
		}

		item := rawItem{
			"canonicalUrl": absoluteURL(href),
			"title":        cardTitle(s.Find("#text.ytd-channel-name, .ytd-channel-name, .channel-title, h3 a").First()),
		}
		if v := cardText(s, "#subscribers, .subscriber-count, #video-count"); v != "" {
			item["subscriberCountText"] = v
		}
		if v := cardText(s, "#description, .channel-description, .description-snippet"); v != "" {
			item["descriptionSnippet"] = v
		}
		if v := cardImage(s); v != "" {
			item["thumbnail"] = v
		}
		items = append(items, item)
		return len(items) < limit
	})
	return items
}

func fallbackPlaylists(doc *goquery.Document, limit int) []rawItem {
	var items []rawItem
	doc.Find("ytd-playlist-renderer, ytd-radio-renderer, .ytd-playlist-renderer, .yt-lockup-playlist").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Find(`a[href*="list="]`).First().Attr("href")
		if !ok {
			return true
		}
		m := listHrefRE.FindStringSubmatch(href)
		if len(m) < 2 {
			return true
		}

		item := rawItem{
			"playlistId": m[1],
			"title":      cardTitle(s.Find("#video-title, .playlist-title, h3 a").First()),
		}
		if v := cardText(s, "ytd-channel-name a, .ytd-channel-name a, .playlist-owner"); v != "" {
			item["ownerText"] = v
		}
		if v := cardText(s, "#video-count, .playlist-length, yt-formatted-string.ytd-thumbnail-overlay-side-panel-renderer"); v != "" {
			item["videoCountText"] = v
		}
		if v := cardImage(s); v != "" {
			item["thumbnail"] = v
		}
		items = append(items, item)
		return len(items) < limit
	})
	return items
}

// cardTitle prefers the title attribute (full text) over the rendered,
// possibly truncated element text.
func cardTitle(s *goquery.Selection) string {
	if title, ok := s.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(s.Text())
}

// cardText returns the trimmed text of the first match within the card.
func cardText(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

// cardImage returns the card's thumbnail URL, handling lazy-load attributes
// and protocol-relative URLs.
func cardImage(s *goquery.Selection) string {
	img := s.Find("img").First()
	src, ok := img.Attr("src")
	if !ok || src == "" {
		src, _ = img.Attr("data-src")
	}
	return absoluteURL(src)
}

func absoluteURL(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return "https://www.youtube.com" + u
	default:
		return u
	}
}
