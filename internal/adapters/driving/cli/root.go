// Package cli implements the tscribe command-line interface using cobra.
//
// Commands receive their services through SetServices, wired up by the
// composition root in cmd/tscribe. Package-level service variables keep
// the cobra init() registration pattern simple.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/quill-labs/tscribe-cli/internal/core/ports/driving"
	"github.com/quill-labs/tscribe-cli/internal/logger"
)

// version is injected at build time via SetVersion.
var version = "dev"

// Injected services. Nil services disable their commands with a clear
// error instead of panicking.
var (
	askService      driving.AskService
	searchService   driving.SearchService
	ingestService   driving.IngestService
	fetchService    driving.FetchService
	settingsService driving.SettingsService
)

// Services bundles everything the CLI commands need.
type Services struct {
	Ask      driving.AskService
	Search   driving.SearchService
	Ingest   driving.IngestService
	Fetch    driving.FetchService
	Settings driving.SettingsService
}

// SetServices wires the driving services into the CLI commands.
func SetServices(s Services) {
	askService = s.Ask
	searchService = s.Search
	ingestService = s.Ingest
	fetchService = s.Fetch
	settingsService = s.Settings
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "tscribe",
	Short: "Ask questions about a transcript archive",
	Long: `tscribe fetches video transcripts, builds a searchable index from them,
and answers natural-language questions about the corpus by assembling the
most relevant excerpts into a prompt for a generation model.

Typical workflow:
  tscribe fetch UCxxxx --out ./subs     # download caption tracks
  tscribe index convert ./subs ./txt    # clean VTT to plain text
  tscribe index build ./txt             # build the searchable index
  tscribe ask "what was said about gold in 2023?"`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline details to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so commands stop
// on interrupt via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
