package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkrutov/yts/pkg/yts"
)

var channelsCmdFlags searchFlags

var channelsCmd = &cobra.Command{
	Use:   "channels <query>...",
	Short: "Search channels only",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := channelsCmdFlags.request(yts.TypeChannel, args)
		if err != nil {
			return err
		}
		results, err := client.Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		return channelsCmdFlags.write(results)
	},
}

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmdFlags.register(channelsCmd, false)
}
