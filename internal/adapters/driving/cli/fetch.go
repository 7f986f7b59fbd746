package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fetchOut string

var fetchCmd = &cobra.Command{
	Use:   "fetch [channel-id]",
	Short: "Download caption tracks for a channel",
	Long: `Lists a channel's recent uploads and downloads the caption track for
each video as a .vtt file named prefix_YYYYMMDD_Title.vtt, ready for
'tscribe index convert'.

Videos without captions are skipped and counted. Without a configured API
key, listing uses the channel's public feed, which covers roughly the
latest 15 uploads.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "transcripts", "output directory for .vtt files")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fetchService == nil {
		return errors.New("fetch service not configured")
	}

	stats, err := fetchService.FetchChannel(cmd.Context(), args[0], fetchOut)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	cmd.Printf("Found %d videos.\n", stats.Listed)
	cmd.Printf("Saved %d caption tracks to %s (%d videos without captions).\n",
		stats.Saved, fetchOut, stats.Missing)
	return nil
}
