package format

import (
	"fmt"
	"io"

	"github.com/mkrutov/yts/pkg/yts"
)

// tableFormatter renders a numbered, human-readable list.
type tableFormatter struct{}

func (tableFormatter) Format(results []yts.Result, w io.Writer) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "No results found.\n")
		return err
	}

	for i, result := range results {
		switch r := result.(type) {
		case yts.VideoResult:
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
			fmt.Fprintf(w, "   Channel: %s\n", r.ChannelTitle)
			if r.Duration != "" {
				fmt.Fprintf(w, "   Duration: %s\n", r.Duration)
			}
			if r.ViewCount != nil && *r.ViewCount > 0 {
				fmt.Fprintf(w, "   Views: %s\n", Count(*r.ViewCount))
			}
			fmt.Fprintf(w, "   URL: %s\n", r.URL)

		case yts.ChannelResult:
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Name)
			if r.Description != "" {
				fmt.Fprintf(w, "   Description: %s\n", truncate(r.Description, 100))
			}
			if r.SubscriberCount != nil && *r.SubscriberCount > 0 {
				fmt.Fprintf(w, "   Subscribers: %s\n", Count(*r.SubscriberCount))
			}
			fmt.Fprintf(w, "   URL: %s\n", r.URL)

		case yts.PlaylistResult:
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
			fmt.Fprintf(w, "   Channel: %s\n", r.ChannelTitle)
			if r.VideoCount != nil && *r.VideoCount > 0 {
				fmt.Fprintf(w, "   Videos: %d\n", *r.VideoCount)
			}
			fmt.Fprintf(w, "   URL: %s\n", r.URL)
		}

		if i < len(results)-1 {
			fmt.Fprintln(w)
		}
	}
	return nil
}

// ytdlpTableFormatter is the table layout with the URL line replaced by a
// ready-to-run yt-dlp command, for videos and playlists.
type ytdlpTableFormatter struct {
	audio bool
}

func (f ytdlpTableFormatter) Format(results []yts.Result, w io.Writer) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "No results found.\n")
		return err
	}

	for i, result := range results {
		switch r := result.(type) {
		case yts.VideoResult:
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
			fmt.Fprintf(w, "   Channel: %s\n", r.ChannelTitle)
			if r.Duration != "" {
				fmt.Fprintf(w, "   Duration: %s\n", r.Duration)
			}
			if r.ViewCount != nil && *r.ViewCount > 0 {
				fmt.Fprintf(w, "   Views: %s\n", Count(*r.ViewCount))
			}
			fmt.Fprintf(w, "   %s\n", f.command(r.URL))

		case yts.ChannelResult:
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Name)
			if r.Description != "" {
				fmt.Fprintf(w, "   Description: %s\n", truncate(r.Description, 100))
			}
			if r.SubscriberCount != nil && *r.SubscriberCount > 0 {
				fmt.Fprintf(w, "   Subscribers: %s\n", Count(*r.SubscriberCount))
			}
			fmt.Fprintf(w, "   %s\n", r.URL)

		case yts.PlaylistResult:
			fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
			fmt.Fprintf(w, "   Channel: %s\n", r.ChannelTitle)
			if r.VideoCount != nil && *r.VideoCount > 0 {
				fmt.Fprintf(w, "   Videos: %d\n", *r.VideoCount)
			}
			fmt.Fprintf(w, "   %s\n", f.command(r.URL))
		}

		if i < len(results)-1 {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func (f ytdlpTableFormatter) command(url string) string {
	if f.audio {
		return fmt.Sprintf("yt-dlp -x --audio-format mp3 '%s'", url)
	}
	return fmt.Sprintf("yt-dlp '%s'", url)
}

// ytdlpFormatter emits bare yt-dlp commands, one per downloadable result.
type ytdlpFormatter struct {
	audio bool
}

func (f ytdlpFormatter) Format(results []yts.Result, w io.Writer) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "No results found.\n")
		return err
	}
	table := ytdlpTableFormatter{audio: f.audio}
	for _, result := range results {
		switch r := result.(type) {
		case yts.VideoResult:
			fmt.Fprintln(w, table.command(r.URL))
		case yts.PlaylistResult:
			fmt.Fprintln(w, table.command(r.URL))
		}
	}
	return nil
}
