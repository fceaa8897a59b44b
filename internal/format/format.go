// Package format renders search results for the CLI: human-readable table,
// JSON, CSV, plain list, and yt-dlp command generation.
package format

import (
	"fmt"
	"io"

	"github.com/mkrutov/yts/pkg/yts"
)

// Formatter writes results to w.
type Formatter interface {
	Format(results []yts.Result, w io.Writer) error
}

// New returns the formatter registered under name: table, json, csv,
// simple, ytdlp, ytdlpa or ytdlpv.
func New(name string) (Formatter, error) {
	switch name {
	case "table":
		return tableFormatter{}, nil
	case "json":
		return jsonFormatter{}, nil
	case "csv":
		return csvFormatter{}, nil
	case "simple":
		return simpleFormatter{}, nil
	case "ytdlp":
		return ytdlpFormatter{}, nil
	case "ytdlpa":
		return ytdlpTableFormatter{audio: true}, nil
	case "ytdlpv":
		return ytdlpTableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// Count renders large numbers the way the search page does: 1.2K, 3.4M,
// 5.6B.
func Count(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
