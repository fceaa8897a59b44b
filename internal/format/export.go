package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mkrutov/yts/pkg/yts"
)

// jsonFormatter exports the generic field maps as an indented JSON array.
// Unset optional fields are absent.
type jsonFormatter struct{}

func (jsonFormatter) Format(results []yts.Result, w io.Writer) error {
	data := make([]map[string]any, len(results))
	for i, r := range results {
		data[i] = r.ToMap()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}

// csvFormatter writes one CSV section per result kind, each with its own
// header row, so mixed result sets keep consistent columns.
type csvFormatter struct{}

func (csvFormatter) Format(results []yts.Result, w io.Writer) error {
	var videos []yts.VideoResult
	var channels []yts.ChannelResult
	var playlists []yts.PlaylistResult
	for _, result := range results {
		switch r := result.(type) {
		case yts.VideoResult:
			videos = append(videos, r)
		case yts.ChannelResult:
			channels = append(channels, r)
		case yts.PlaylistResult:
			playlists = append(playlists, r)
		}
	}

	if len(videos) > 0 {
		fmt.Fprintln(w, "Videos:")
		cw := csv.NewWriter(w)
		cw.Write([]string{"Title", "Channel", "Duration", "Views", "URL"})
		for _, v := range videos {
			cw.Write([]string{v.Title, v.ChannelTitle, v.Duration, optCount(v.ViewCount), v.URL})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if len(channels) > 0 {
		fmt.Fprintln(w, "Channels:")
		cw := csv.NewWriter(w)
		cw.Write([]string{"Name", "Description", "Subscribers", "URL"})
		for _, c := range channels {
			cw.Write([]string{c.Name, c.Description, optCount(c.SubscriberCount), c.URL})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if len(playlists) > 0 {
		fmt.Fprintln(w, "Playlists:")
		cw := csv.NewWriter(w)
		cw.Write([]string{"Title", "Channel", "Video Count", "URL"})
		for _, p := range playlists {
			cw.Write([]string{p.Title, p.ChannelTitle, optCount(p.VideoCount), p.URL})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	}
	return nil
}

func optCount(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

// simpleFormatter writes one line per result.
type simpleFormatter struct{}

func (simpleFormatter) Format(results []yts.Result, w io.Writer) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "No results found.\n")
		return err
	}
	for _, result := range results {
		switch r := result.(type) {
		case yts.VideoResult:
			fmt.Fprintf(w, "%s - %s\n", r.Title, r.ChannelTitle)
		case yts.ChannelResult:
			fmt.Fprintln(w, r.Name)
		case yts.PlaylistResult:
			fmt.Fprintf(w, "%s - %s\n", r.Title, r.ChannelTitle)
		}
	}
	return nil
}
