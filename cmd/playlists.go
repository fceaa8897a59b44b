package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkrutov/yts/pkg/yts"
)

var playlistsCmdFlags searchFlags

var playlistsCmd = &cobra.Command{
	Use:   "playlists <query>...",
	Short: "Search playlists only",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := playlistsCmdFlags.request(yts.TypePlaylist, args)
		if err != nil {
			return err
		}
		results, err := client.Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		return playlistsCmdFlags.write(results)
	},
}

func init() {
	rootCmd.AddCommand(playlistsCmd)
	playlistsCmdFlags.register(playlistsCmd, false)
	playlistsCmdFlags.registerYtdlp(playlistsCmd)
}
