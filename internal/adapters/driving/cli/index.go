package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build and maintain the transcript index",
	Long:  `Commands for converting raw subtitles and building the searchable index.`,
}

var indexConvertCmd = &cobra.Command{
	Use:   "convert [vtt-dir] [txt-dir]",
	Short: "Clean .vtt subtitle files into plain text",
	Long: `Cleans every .vtt file in vtt-dir and writes one .txt file per subtitle
into txt-dir. Headers, cue timings, inline markup and the consecutive
duplicate segments typical of auto-generated captions are removed.`,
	Args: cobra.ExactArgs(2),
	RunE: runIndexConvert,
}

var indexBuildCmd = &cobra.Command{
	Use:   "build [txt-dir]",
	Short: "Build the searchable index from cleaned transcripts",
	Long: `Scans txt-dir for cleaned .txt transcripts, parses the date and title
from each filename (prefix_YYYYMMDD_Title.txt), and writes the records to
the configured transcript store.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexBuild,
}

var indexWatchCmd = &cobra.Command{
	Use:   "watch [txt-dir]",
	Short: "Rebuild the index whenever the transcript directory changes",
	Long: `Watches txt-dir and rebuilds the index after files are added, changed
or removed. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexWatch,
}

func init() {
	indexCmd.AddCommand(indexConvertCmd)
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexWatchCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexConvert(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	stats, err := ingestService.ConvertVTT(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	cmd.Printf("Total VTT files found: %d\n", stats.Found)
	cmd.Printf("Successfully converted: %d\n", stats.Converted)
	cmd.Printf("Skipped/Failed: %d\n", stats.Skipped)
	return nil
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	count, err := ingestService.BuildIndex(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	cmd.Printf("Indexed %d transcripts.\n", count)
	return nil
}

func runIndexWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	// Build once up front so the index is fresh before watching
	if _, err := ingestService.BuildIndex(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("initial index build failed: %w", err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	if err := ingestService.Watch(cmd.Context(), args[0]); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
