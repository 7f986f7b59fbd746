package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the generation provider, transcript store backend,
and retrieval behaviour.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider",
	Short: "Configure the generation provider",
	Long: `Configure the provider used to answer questions.

Available providers:
  gemini  - Google Gemini cloud API (requires API key)
  openai  - OpenAI cloud API (requires API key)
  ollama  - Local Ollama instance (no key needed)`,
	RunE: runSettingsProvider,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [json|sqlite] [path]",
	Short: "Configure the transcript store backend",
	Long: `Select where the transcript index lives.

  json    - a single search_data.json index file
  sqlite  - a SQLite archive that accumulates across ingests

The optional path argument points at the JSON file or the SQLite data
directory.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsBackend,
}

var settingsNoContextCmd = &cobra.Command{
	Use:   "no-context [ask_anyway|canned_reply]",
	Short: "Set behaviour when no transcript excerpts match",
	Long: `Controls what 'ask' does when nothing in the corpus matches a question.

  ask_anyway   - still call the model, telling it no excerpts were found
  canned_reply - answer with a fixed message, never calling the model`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsNoContext,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsNoContextCmd)
	rootCmd.AddCommand(settingsCmd)
}

// allProviders lists the selectable generation providers in menu order.
func allProviders() []domain.AIProvider {
	return []domain.AIProvider{
		domain.AIProviderGemini,
		domain.AIProviderOpenAI,
		domain.AIProviderOllama,
	}
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Provider]")
	cmd.Printf("  Provider: %s\n", settings.Provider.Description())
	if settings.Model != "" {
		cmd.Printf("  Model: %s\n", settings.Model)
	} else {
		cmd.Printf("  Model: (provider default)\n")
	}
	if settings.Provider.RequiresAPIKey() {
		if settings.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	cmd.Println()

	cmd.Println("[Store]")
	cmd.Printf("  Backend: %s\n", settings.Backend)
	if settings.CorpusPath != "" {
		cmd.Printf("  Path: %s\n", settings.CorpusPath)
	}
	cmd.Println()

	cmd.Println("[Ask]")
	cmd.Printf("  No-context policy: %s\n", settings.NoContext)
	cmd.Printf("  Max chunks per prompt: %d\n", settings.Retrieval.MaxChunks)
	cmd.Printf("  Context budget (chars): %d\n", settings.Retrieval.MaxTotalChars)
	cmd.Printf("  Chunk max length: %d\n", settings.Retrieval.ChunkMaxLength)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'tscribe settings provider' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsProvider(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select Generation Provider")
	providers := allProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selected := providers[idx-1]

	cmd.Print("Enter model name (empty for provider default): ")
	model := readLine(reader)

	var apiKey string
	if selected.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetProvider(selected, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure provider: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateProvider(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("provider validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("Provider configured: %s\n", selected.Description())
	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StoreBackend(args[0])
	if !backend.IsValid() {
		return fmt.Errorf("unknown backend %q (use json or sqlite): %w", args[0], domain.ErrInvalidInput)
	}

	var path string
	if len(args) == 2 {
		path = args[1]
	}

	if err := settingsService.SetBackend(backend, path); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	cmd.Printf("Store backend set to: %s\n", backend)
	return nil
}

func runSettingsNoContext(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	policy := domain.NoContextPolicy(args[0])
	if !policy.IsValid() {
		return fmt.Errorf("unknown policy %q (use ask_anyway or canned_reply): %w", args[0], domain.ErrInvalidInput)
	}

	if err := settingsService.SetNoContextPolicy(policy); err != nil {
		return fmt.Errorf("failed to set policy: %w", err)
	}

	cmd.Printf("No-context policy set to: %s\n", policy)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
