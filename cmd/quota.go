package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Check quota information",
	Run: func(cmd *cobra.Command, args []string) {
		// Kept for parity with API-based tools. Scraping has no quota.
		fmt.Println("yts does not use the YouTube API, so there are no quota limits.")
		fmt.Println("You can make unlimited searches without API keys.")
	},
}

func init() {
	rootCmd.AddCommand(quotaCmd)
}
