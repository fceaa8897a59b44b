package yts

// Result is one canonical search result: VideoResult, ChannelResult or
// PlaylistResult. Results are value records, created once per search and
// never mutated.
type Result interface {
	// ToMap converts the result to a generic field map for JSON/CSV export.
	// Unset optional fields are absent from the map.
	ToMap() map[string]any
}

// VideoResult represents a video search result.
type VideoResult struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	ChannelTitle    string `json:"channel_title"`
	ViewCount       *int64 `json:"view_count,omitempty"`
	Duration        string `json:"duration,omitempty"` // human readable, e.g. "10:30"
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	UploadDate      string `json:"upload_date,omitempty"`
	Description     string `json:"description,omitempty"`
}

func (v VideoResult) ToMap() map[string]any {
	m := map[string]any{
		"title":         v.Title,
		"url":           v.URL,
		"channel_title": v.ChannelTitle,
	}
	if v.ViewCount != nil {
		m["view_count"] = *v.ViewCount
	}
	if v.Duration != "" {
		m["duration"] = v.Duration
	}
	if v.DurationSeconds != nil {
		m["duration_seconds"] = *v.DurationSeconds
	}
	if v.ThumbnailURL != "" {
		m["thumbnail_url"] = v.ThumbnailURL
	}
	if v.UploadDate != "" {
		m["upload_date"] = v.UploadDate
	}
	if v.Description != "" {
		m["description"] = v.Description
	}
	return m
}

// ChannelResult represents a channel search result.
type ChannelResult struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	SubscriberCount *int64 `json:"subscriber_count,omitempty"`
	VideoCount      *int64 `json:"video_count,omitempty"`
	Description     string `json:"description,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
}

func (c ChannelResult) ToMap() map[string]any {
	m := map[string]any{
		"name": c.Name,
		"url":  c.URL,
	}
	if c.SubscriberCount != nil {
		m["subscriber_count"] = *c.SubscriberCount
	}
	if c.VideoCount != nil {
		m["video_count"] = *c.VideoCount
	}
	if c.Description != "" {
		m["description"] = c.Description
	}
	if c.AvatarURL != "" {
		m["avatar_url"] = c.AvatarURL
	}
	return m
}

// PlaylistResult represents a playlist search result.
type PlaylistResult struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ChannelTitle string `json:"channel_title"`
	VideoCount   *int64 `json:"video_count,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

func (p PlaylistResult) ToMap() map[string]any {
	m := map[string]any{
		"title":         p.Title,
		"url":           p.URL,
		"channel_title": p.ChannelTitle,
	}
	if p.VideoCount != nil {
		m["video_count"] = *p.VideoCount
	}
	if p.ThumbnailURL != "" {
		m["thumbnail_url"] = p.ThumbnailURL
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	return m
}
