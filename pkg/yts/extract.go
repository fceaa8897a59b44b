package yts

import (
	"bytes"
	"encoding/json"
)

// initialDataMarker precedes the embedded JSON the page ships for
// client-side rendering. It is the primary source of structured results.
const initialDataMarker = "var ytInitialData = "

// rawItem is one result record as pulled from either extraction tier:
// a field-name to raw-value map whose shape varies by content type. The
// structured tier stores decoded JSON values (maps, slices), the fallback
// tier plain strings; the normalizer's accessors handle both.
type rawItem map[string]any

// tierStatus is the outcome of one extraction tier.
type tierStatus int

const (
	tierFound       tierStatus = iota // items extracted
	tierEmpty                         // page parsed, no matching items
	tierParseFailed                   // marker missing or JSON unusable
)

// rendererKey maps a result type to the key identifying its item container
// in the initial-data tree.
func rendererKey(t ResultType) string {
	switch t {
	case TypeChannel:
		return "channelRenderer"
	case TypePlaylist:
		return "playlistRenderer"
	default:
		return "videoRenderer"
	}
}

// extractInitialData locates the embedded initial-data JSON and walks it to
// the result items of the wanted type, in document order, truncated to
// limit. A missing marker or unexpected tree shape is not an error: it
// reports tierParseFailed and the caller falls back to markup scanning.
func extractInitialData(body []byte, t ResultType, limit int) ([]rawItem, tierStatus) {
	idx := bytes.Index(body, []byte(initialDataMarker))
	if idx < 0 {
		return nil, tierParseFailed
	}

	blob := balancedJSON(body[idx+len(initialDataMarker):])
	if blob == nil {
		return nil, tierParseFailed
	}

	var data map[string]any
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, tierParseFailed
	}

	sections, ok := digSlice(data,
		"contents",
		"twoColumnSearchResultsRenderer",
		"primaryContents",
		"sectionListRenderer",
		"contents",
	)
	if !ok {
		return nil, tierParseFailed
	}

	key := rendererKey(t)
	var items []rawItem
	for _, section := range sections {
		// Continuation, shelf and ad sections have no itemSectionRenderer
		// and are skipped here.
		entries, ok := digSlice(section, "itemSectionRenderer", "contents")
		if !ok {
			continue
		}
		for _, entry := range entries {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			renderer, ok := obj[key].(map[string]any)
			if !ok {
				continue
			}
			items = append(items, rawItem(renderer))
			if len(items) >= limit {
				return items, tierFound
			}
		}
	}

	if len(items) == 0 {
		return nil, tierEmpty
	}
	return items, tierFound
}

// balancedJSON extracts the complete JSON object starting at b[0] == '{' by
// tracking brace depth. String literals are skipped with escape handling,
// so braces inside strings never unbalance the scan. Returns nil when the
// object never closes.
func balancedJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '"':
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' {
					i++ // skip escaped byte
				}
				i++
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// dig walks nested objects by key, returning false on any shape mismatch.
func dig(v any, keys ...string) (any, bool) {
	for _, k := range keys {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok = obj[k]
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// digSlice is dig for paths ending in an array.
func digSlice(v any, keys ...string) ([]any, bool) {
	got, ok := dig(v, keys...)
	if !ok {
		return nil, false
	}
	s, ok := got.([]any)
	return s, ok
}
