// yts — YouTube search without the API.
//
// Scrapes the public search page for videos, channels and playlists and
// renders them as table, JSON, CSV, plain text or yt-dlp commands.
package main

import (
	"github.com/joho/godotenv"
	"github.com/mkrutov/yts/cmd"
)

func main() {
	// .env is optional; the CLI works with zero configuration.
	_ = godotenv.Load()

	cmd.Execute()
}
