// Command tscribe fetches video transcripts, indexes them, and answers
// questions about the corpus. This is the composition root: it reads the
// configuration, opens the transcript store, assembles the core services,
// and hands them to the CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/ai"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/config/file"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/links/youtube"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/memory"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/sqlite"
	"github.com/quill-labs/tscribe-cli/internal/adapters/driving/cli"
	"github.com/quill-labs/tscribe-cli/internal/chunker"
	ytconnector "github.com/quill-labs/tscribe-cli/internal/connectors/youtube"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
	"github.com/quill-labs/tscribe-cli/internal/core/services"
	"github.com/quill-labs/tscribe-cli/internal/logger"
	"github.com/quill-labs/tscribe-cli/internal/normalisers/vtt"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// keyFetchAPIKey holds the optional YouTube Data API key. Read directly
// from the config store: it configures a connector, not the app settings.
const keyFetchAPIKey = "fetch.youtube_api_key"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, closeStore := openStore(*settings)
	defer closeStore()

	records, err := store.LoadAll(ctx)
	if err != nil && !errors.Is(err, domain.ErrDataUnavailable) {
		return fmt.Errorf("load corpus: %w", err)
	}
	corpus := domain.NewCorpus(records)

	chk := chunker.New(chunker.WithMaxLength(settings.Retrieval.ChunkMaxLength))
	scorer := services.NewScorer(settings.Scoring)
	selector := services.NewSelector(chk, scorer)
	classifier := services.NewIntentClassifier(settingsService.ComparisonPhrases())

	assembler := services.NewPromptAssembler()
	if promptStore, perr := file.NewPromptStore(""); perr == nil {
		assembler.SetPromptStore(promptStore)
	}

	generator, err := ai.CreateGenerator(*settings)
	if err != nil {
		logger.Warn("Generation provider unavailable: %v", err)
		generator = nil
	}
	if generator != nil {
		defer generator.Close()
	}

	svcs := cli.Services{
		Search:   services.NewSearchService(corpus, chk, scorer),
		Ingest:   services.NewIngestService(vtt.New(), store),
		Fetch:    services.NewFetchService(ytconnector.New(ytconnector.Config{APIKey: fetchAPIKey(configStore)})),
		Settings: settingsService,
	}
	if generator != nil {
		svcs.Ask = services.NewAskService(
			corpus, classifier, selector, assembler,
			generator, youtube.New(),
			settings.Retrieval, settings.NoContext,
		)
	}

	cli.SetServices(svcs)
	cli.SetVersion(version)
	return cli.ExecuteContext(ctx)
}

// transcriptStore is the read+write surface the pipeline needs from a
// storage backend.
type transcriptStore interface {
	driven.TranscriptStore
	driven.TranscriptWriter
}

// openStore opens the configured storage backend. When the backend cannot
// be opened the process still has to serve fetch, convert, and settings
// commands, so it degrades to an empty in-memory store with a warning.
func openStore(settings domain.AppSettings) (transcriptStore, func() error) {
	switch settings.Backend {
	case domain.StoreBackendSQLite:
		s, err := sqlite.NewStore(settings.CorpusPath)
		if err != nil {
			logger.Warn("SQLite store unavailable, using empty in-memory corpus: %v", err)
			return memory.NewTranscriptStore(), func() error { return nil }
		}
		return s, s.Close

	default:
		s, err := jsonfile.NewStore(settings.CorpusPath)
		if err != nil {
			logger.Warn("JSON store unavailable, using empty in-memory corpus: %v", err)
			return memory.NewTranscriptStore(), func() error { return nil }
		}
		return s, func() error { return nil }
	}
}

// fetchAPIKey resolves the optional YouTube Data API key: environment
// variable first, then the config file.
func fetchAPIKey(configStore driven.ConfigStore) string {
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		return key
	}
	return configStore.GetString(keyFetchAPIKey)
}
