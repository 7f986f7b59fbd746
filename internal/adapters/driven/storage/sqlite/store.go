package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/quill-labs/tscribe-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/quill-labs/tscribe-cli/internal/core/domain"
	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// Ensure Store implements both port interfaces.
var (
	_ driven.TranscriptStore  = (*Store)(nil)
	_ driven.TranscriptWriter = (*Store)(nil)
)

// Store is a SQLite-backed transcript archive. Unlike the JSON file
// backend it upserts per record, so repeated ingests of overlapping
// directories accumulate instead of replacing the corpus.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tscribe/data/transcripts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tscribe", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "transcripts.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns every transcript record, oldest first by raw date.
// An empty archive is reported as domain.ErrDataUnavailable: answering
// questions from nothing is worse than failing loudly.
func (s *Store) LoadAll(ctx context.Context) ([]domain.TranscriptRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, date_raw, body
		FROM transcripts
		ORDER BY date_raw, id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying transcripts: %v", domain.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var records []domain.TranscriptRecord
	for rows.Next() {
		var r domain.TranscriptRecord
		if err := rows.Scan(&r.ID, &r.Title, &r.DateRaw, &r.Text); err != nil {
			return nil, fmt.Errorf("scanning transcript: %w", err)
		}
		r.Date = domain.ParseTranscriptDate(r.DateRaw)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcripts: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: transcript archive at %s is empty", domain.ErrDataUnavailable, s.path)
	}
	return records, nil
}

// SaveAll upserts the given records inside one transaction. Records
// without an ID get a generated UUID.
func (s *Store) SaveAll(ctx context.Context, records []domain.TranscriptRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	now := time.Now().UTC()
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transcripts (id, title, date_raw, body, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				date_raw = excluded.date_raw,
				body = excluded.body,
				updated_at = excluded.updated_at
		`, r.ID, r.Title, r.DateRaw, r.Text, now, now)
		if err != nil {
			return fmt.Errorf("upserting transcript %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Count returns the number of archived transcripts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transcripts")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting transcripts: %w", err)
	}
	return n, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_transcripts.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
