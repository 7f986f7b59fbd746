package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

var (
	searchLimit  int
	searchOffset int
	searchJSON   bool
	searchFrom   string
	searchTo     string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the transcript corpus",
	Long: `Performs keyword search across all indexed transcripts without
calling a generation model. Each result shows the best-matching excerpt
from one transcript.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "only transcripts on or after this date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "only transcripts before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit:  searchLimit,
		Offset: searchOffset,
	}
	dateRange, err := parseDateRange(searchFrom, searchTo)
	if err != nil {
		return err
	}
	opts.Range = dateRange

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

// parseDateRange builds a half-open range from the --from/--to flags.
func parseDateRange(from, to string) (*domain.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	r := &domain.DateRange{}
	if from != "" {
		t := domain.ParseTranscriptDate(from)
		if t == nil {
			return nil, fmt.Errorf("invalid --from date %q: %w", from, domain.ErrInvalidInput)
		}
		r.Start = t
	}
	if to != "" {
		t := domain.ParseTranscriptDate(to)
		if t == nil {
			return nil, fmt.Errorf("invalid --to date %q: %w", to, domain.ErrInvalidInput)
		}
		r.End = t
	}
	return r, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Record.Title
		if title == "" {
			title = results[i].Record.ID
		}

		cmd.Printf("  [%d] %s (%s) (%.2f)\n", i+1, title, results[i].Record.DateLabel(), results[i].Score)
		for _, h := range results[i].Highlights {
			cmd.Printf("      %s\n", h)
		}
		cmd.Println()
	}

	return nil
}
