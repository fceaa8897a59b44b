package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mkrutov/yts/internal/format"
	"github.com/mkrutov/yts/pkg/yts"
	"github.com/spf13/cobra"
)

// searchFlags mirrors the SearchRequest options plus output handling.
// Each subcommand carries its own instance, matching its flag subset.
type searchFlags struct {
	maxResults      int
	resultType      string
	order           string
	publishedAfter  string
	publishedBefore string
	duration        string
	region          string
	channelID       string
	formatName      string
	output          string
	ytdlpAudio      bool
	ytdlpVideo      bool
}

// register adds the common flag set. full adds the search-filter flags that
// only video-capable searches take.
func (f *searchFlags) register(cmd *cobra.Command, full bool) {
	cmd.Flags().IntVar(&f.maxResults, "max-results", 0, "maximum number of results")
	cmd.Flags().StringVar(&f.formatName, "format", "table", "output format (table|json|csv|simple)")
	cmd.Flags().StringVar(&f.output, "output", "", "write results to file")
	if full {
		cmd.Flags().StringVar(&f.order, "order", "relevance", "sort order (relevance|date|viewCount|rating)")
		cmd.Flags().StringVar(&f.publishedAfter, "published-after", "", "published after date (ISO format)")
		cmd.Flags().StringVar(&f.publishedBefore, "published-before", "", "published before date (ISO format)")
		cmd.Flags().StringVar(&f.duration, "duration", "", "video duration filter (short|medium|long)")
		cmd.Flags().StringVar(&f.region, "region", "", "region code (e.g. US)")
		cmd.Flags().StringVar(&f.channelID, "channel-id", "", "search within a specific channel")
	}
}

func (f *searchFlags) registerYtdlp(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.ytdlpAudio, "ytdlpa", false, "generate yt-dlp audio download commands")
	cmd.Flags().BoolVar(&f.ytdlpVideo, "ytdlpv", false, "generate yt-dlp video download commands")
}

// request builds the SearchRequest for the given query words.
func (f *searchFlags) request(resultType yts.ResultType, args []string) (yts.SearchRequest, error) {
	req := yts.SearchRequest{
		Query:      strings.Join(args, " "),
		Type:       resultType,
		MaxResults: f.maxResults,
		Order:      yts.Order(f.order),
		Duration:   yts.DurationFilter(f.duration),
		Region:     f.region,
		ChannelID:  f.channelID,
	}
	var err error
	if req.PublishedAfter, err = parseDate(f.publishedAfter); err != nil {
		return req, fmt.Errorf("invalid --published-after: %w", err)
	}
	if req.PublishedBefore, err = parseDate(f.publishedBefore); err != nil {
		return req, fmt.Errorf("invalid --published-before: %w", err)
	}
	return req, nil
}

// write renders results in the selected format, to stdout or --output.
// --ytdlpa / --ytdlpv override --format.
func (f *searchFlags) write(results []yts.Result) error {
	name := f.formatName
	if f.ytdlpAudio {
		name = "ytdlpa"
	} else if f.ytdlpVideo {
		name = "ytdlpv"
	}

	formatter, err := format.New(name)
	if err != nil {
		return err
	}

	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := formatter.Format(results, file); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", f.output)
		return nil
	}
	return formatter.Format(results, os.Stdout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO date", s)
}

var searchCmdFlags searchFlags

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search for content",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := searchCmdFlags.request(yts.ResultType(searchCmdFlags.resultType), args)
		if err != nil {
			return err
		}
		results, err := client.Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		return searchCmdFlags.write(results)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmdFlags.register(searchCmd, true)
	searchCmdFlags.registerYtdlp(searchCmd)
	searchCmd.Flags().StringVar(&searchCmdFlags.resultType, "type", "video", "type of content (video|channel|playlist)")
}
