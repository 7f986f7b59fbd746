package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the transcript corpus",
	Long: `Answers a natural-language question using the transcript archive.

The question is matched against the indexed transcripts; the most relevant
excerpts are assembled into a prompt for the configured generation model,
and the answer cites the transcripts it drew from.

Comparison questions spanning years ("compare X in 2020 vs 2023") retrieve
context from both timeframes.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured: set a provider with 'tscribe settings provider'")
	}

	answer, err := askService.Ask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	printSources(cmd, answer.Sources)
	return nil
}

func printSources(cmd *cobra.Command, sources []domain.Source) {
	if len(sources) == 0 {
		return
	}
	cmd.Println()
	cmd.Println("Sources:")
	for _, s := range sources {
		cmd.Printf("  - %s (%s)\n", s.Title, s.DateLabel)
		if s.URL != "" {
			cmd.Printf("    %s\n", s.URL)
		}
	}
}
