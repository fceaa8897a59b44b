package yts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalization converts raw item records from either extraction tier into
// canonical results. Required fields (title, url) reject the record when
// missing; malformed optional fields are dropped, never fatal.

// normalizeItems builds canonical results from raw items, preserving order
// and capping at limit.
func normalizeItems(items []rawItem, t ResultType, limit int) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		var (
			r  Result
			ok bool
		)
		switch t {
		case TypeChannel:
			r, ok = normalizeChannel(item)
		case TypePlaylist:
			r, ok = normalizePlaylist(item)
		default:
			r, ok = normalizeVideo(item)
		}
		if !ok {
			continue
		}
		results = append(results, r)
		if len(results) >= limit {
			break
		}
	}
	return results
}

func normalizeVideo(item rawItem) (VideoResult, bool) {
	v := VideoResult{
		Title:        itemText(item, "title"),
		URL:          itemURL(item, "videoId", "https://www.youtube.com/watch?v="),
		ChannelTitle: firstItemText(item, "ownerText", "shortBylineText", "longBylineText"),
	}
	if v.Title == "" || v.URL == "" {
		return VideoResult{}, false
	}

	if text := itemText(item, "lengthText"); text != "" {
		v.Duration = text
		if secs, ok := parseDurationSeconds(text); ok {
			v.DurationSeconds = &secs
		}
	}
	if n, ok := parseAbbrevCount(itemText(item, "viewCountText")); ok {
		v.ViewCount = &n
	}
	v.ThumbnailURL = thumbnailURL(item["thumbnail"])
	v.UploadDate = itemText(item, "publishedTimeText")
	v.Description = firstItemText(item, "descriptionSnippet", "detailedMetadataSnippets")
	return v, true
}

func normalizeChannel(item rawItem) (ChannelResult, bool) {
	c := ChannelResult{
		Name: itemText(item, "title"),
		URL:  itemURL(item, "channelId", "https://www.youtube.com/channel/"),
	}
	if c.Name == "" || c.URL == "" {
		return ChannelResult{}, false
	}

	if n, ok := parseAbbrevCount(itemText(item, "subscriberCountText")); ok {
		c.SubscriberCount = &n
	}
	if n, ok := parseAbbrevCount(itemText(item, "videoCountText")); ok {
		c.VideoCount = &n
	}
	c.Description = itemText(item, "descriptionSnippet")
	c.AvatarURL = thumbnailURL(item["thumbnail"])
	return c, true
}

func normalizePlaylist(item rawItem) (PlaylistResult, bool) {
	p := PlaylistResult{
		Title:        itemText(item, "title"),
		URL:          itemURL(item, "playlistId", "https://www.youtube.com/playlist?list="),
		ChannelTitle: firstItemText(item, "ownerText", "shortBylineText", "longBylineText"),
	}
	if p.Title == "" || p.URL == "" {
		return PlaylistResult{}, false
	}

	if n, ok := parseAbbrevCount(firstItemText(item, "videoCount", "videoCountText")); ok {
		p.VideoCount = &n
	}
	if p.ThumbnailURL = thumbnailURL(item["thumbnail"]); p.ThumbnailURL == "" {
		if thumbs, ok := item["thumbnails"].([]any); ok && len(thumbs) > 0 {
			p.ThumbnailURL = thumbnailURL(thumbs[0])
		}
	}
	p.Description = itemText(item, "descriptionSnippet")
	return p, true
}

// itemURL resolves a canonical URL: an explicit canonicalUrl set by the
// fallback tier wins, otherwise the URL is derived from the renderer's ID
// field.
func itemURL(item rawItem, idKey, prefix string) string {
	if u, ok := item["canonicalUrl"].(string); ok && u != "" {
		return u
	}
	if id, ok := item[idKey].(string); ok && id != "" {
		return prefix + id
	}
	return ""
}

// itemText resolves one of the page's text objects to a plain string. The
// shape varies: plain strings (fallback tier), {"simpleText": ...}, or
// {"runs": [{"text": ...}, ...]} which are concatenated. Anything else
// yields "".
func itemText(item rawItem, key string) string {
	return textOf(item[key])
}

// firstItemText returns the first non-empty text among keys.
func firstItemText(item rawItem, keys ...string) string {
	for _, k := range keys {
		if s := textOf(item[k]); s != "" {
			return s
		}
	}
	return ""
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if s, ok := t["simpleText"].(string); ok {
			return strings.TrimSpace(s)
		}
		runs, ok := t["runs"].([]any)
		if !ok {
			return ""
		}
		var b strings.Builder
		for _, run := range runs {
			if m, ok := run.(map[string]any); ok {
				if s, ok := m["text"].(string); ok {
					b.WriteString(s)
				}
			}
		}
		return strings.TrimSpace(b.String())
	case []any:
		// e.g. detailedMetadataSnippets: take the first snippet's text.
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				if s := textOf(m["snippetText"]); s != "" {
					return s
				}
			}
		}
		return ""
	default:
		return ""
	}
}

// thumbnailURL pulls the highest-resolution URL from a thumbnail object
// ({"thumbnails": [{"url": ...}, ...]}, ordered small to large) or passes a
// plain string through.
func thumbnailURL(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	thumbs, ok := digSlice(v, "thumbnails")
	if !ok || len(thumbs) == 0 {
		return ""
	}
	last, ok := thumbs[len(thumbs)-1].(map[string]any)
	if !ok {
		return ""
	}
	u, _ := last["url"].(string)
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	return u
}

// parseAbbrevCount parses count strings like "1.2M views", "834K
// subscribers", "4,532" or "128 videos" into an integer. K/M/B suffixes
// multiply a float prefix, rounded to the nearest integer. Returns false on
// anything it cannot parse; callers leave the field unset.
func parseAbbrevCount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// "1.2M views" -> "1.2M"
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ",", "")

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		multiplier = 1_000
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
	case strings.HasSuffix(s, "B"), strings.HasSuffix(s, "b"):
		multiplier = 1_000_000_000
	}
	if multiplier > 1 {
		f, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil || f < 0 {
			return 0, false
		}
		return int64(math.Round(f * float64(multiplier))), true
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseDurationSeconds converts "MM:SS" or "H:MM:SS" to total seconds.
func parseDurationSeconds(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// FormatDuration renders seconds in the page's duration notation: "M:SS"
// under an hour, "H:MM:SS" above. Round-trips exactly through
// parseDurationSeconds.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
