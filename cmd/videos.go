package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkrutov/yts/pkg/yts"
)

var videosCmdFlags searchFlags

var videosCmd = &cobra.Command{
	Use:   "videos <query>...",
	Short: "Search videos only",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := videosCmdFlags.request(yts.TypeVideo, args)
		if err != nil {
			return err
		}
		results, err := client.Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		return videosCmdFlags.write(results)
	},
}

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmdFlags.register(videosCmd, true)
	videosCmdFlags.registerYtdlp(videosCmd)
}
