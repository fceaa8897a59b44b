// Package cmd implements the yts command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mkrutov/yts/internal/config"
	"github.com/mkrutov/yts/pkg/yts"
	"github.com/spf13/cobra"
)

var (
	debug  bool
	cfg    config.Config
	client *yts.Client
)

var rootCmd = &cobra.Command{
	Use:   "yts",
	Short: "YouTube search without the API",
	Long: `yts searches YouTube by scraping the public search page: no API key,
no quota limits.

Examples:
  yts search "golang tutorial"
  yts videos "lofi hip hop" --max-results 10 --order viewCount
  yts channels "cooking" --format json
  yts playlists "workout" --ytdlpa`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := slog.LevelWarn
		if debug || cfg.Debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		opts := []yts.Option{
			yts.WithTimeout(cfg.Timeout),
			yts.WithMaxResults(cfg.MaxResults),
		}
		if cfg.UserAgent != "" {
			opts = append(opts, yts.WithUserAgent(cfg.UserAgent))
		}
		client = yts.NewClient(opts...)
		return nil
	},
}

// Execute runs the CLI. Search failures print to stderr and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var searchErr *yts.SearchError
		if errors.As(err, &searchErr) {
			fmt.Fprintf(os.Stderr, "Search error: %v\n", searchErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
