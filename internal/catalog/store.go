// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extracted options and merged translations in
// a local SQLite database with a full-text index, so past renderings
// stay queryable after the prompt and template are long gone.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

// Store manages the translation catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.Path, creating
// parent directories and the schema as needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS options (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			source_path TEXT,
			extracted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS translations (
			l10n_key TEXT PRIMARY KEY,
			option_key TEXT REFERENCES options(key) ON DELETE SET NULL,
			field TEXT NOT NULL,
			value TEXT NOT NULL,
			merged_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_translations_option_key ON translations(option_key)`,
		`CREATE TABLE IF NOT EXISTS scan_status (
			source_path TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='options_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE options_fts USING fts5(key, name, description, content=options, content_rowid=rowid)`,
			`CREATE TRIGGER options_ai AFTER INSERT ON options BEGIN
				INSERT INTO options_fts(rowid, key, name, description)
				VALUES (new.rowid, new.key, new.name, new.description);
			END`,
			`CREATE TRIGGER options_ad AFTER DELETE ON options BEGIN
				INSERT INTO options_fts(options_fts, rowid, key, name, description)
				VALUES('delete', old.rowid, old.key, old.name, old.description);
			END`,
			`CREATE TRIGGER options_au AFTER UPDATE ON options BEGIN
				INSERT INTO options_fts(options_fts, rowid, key, name, description)
				VALUES('delete', old.rowid, old.key, old.name, old.description);
				INSERT INTO options_fts(rowid, key, name, description)
				VALUES (new.rowid, new.key, new.name, new.description);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// StoreSummary holds counts from a catalog indexing run.
type StoreSummary struct {
	Options      int // options upserted
	Stale        int // options removed as no longer in the database file
	Translations int // translation entries upserted
	Unlinked     int // translations with no matching option
	Skipped      int // unchanged sources skipped
}

// StoreOptions upserts the records extracted from sourcePath and removes
// options previously indexed from that file which no current record
// carries. Stored translations survive an option's removal with their
// option reference cleared. When the file's mod time matches the last
// recorded scan the whole run is skipped; force bypasses the check.
func (s *Store) StoreOptions(ctx context.Context, records []types.Record, sourcePath string, force bool, w io.Writer) (StoreSummary, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("stat database %s: %w", sourcePath, err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	if skip, err := s.sourceUnchanged(ctx, sourcePath, modTime, force); err != nil {
		return StoreSummary{}, err
	} else if skip {
		fmt.Fprintf(w, "skipped %s (unchanged)\n", sourcePath)
		return StoreSummary{Skipped: 1}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO options (key, name, description, source_path, extracted_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			name=excluded.name, description=excluded.description,
			source_path=excluded.source_path, extracted_at=excluded.extracted_at`)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	extractedAt := time.Now().UTC().Format(time.RFC3339)
	current := make(map[string]bool, len(records))
	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Key, rec.Name, rec.Description, sourcePath, extractedAt); err != nil {
			return StoreSummary{}, fmt.Errorf("upserting option %s: %w", rec.Key, err)
		}
		current[rec.Key] = true
	}

	stale, err := staleOptionKeys(ctx, tx, sourcePath, current)
	if err != nil {
		return StoreSummary{}, err
	}
	for _, key := range stale {
		if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE key = ?`, key); err != nil {
			return StoreSummary{}, fmt.Errorf("removing stale option %s: %w", key, err)
		}
	}

	if err := recordScan(ctx, tx, sourcePath, modTime); err != nil {
		return StoreSummary{}, err
	}
	if err := tx.Commit(); err != nil {
		return StoreSummary{}, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "indexed %d options from %s\n", len(records), sourcePath)
	if len(stale) > 0 {
		fmt.Fprintf(w, "removed %d stale option(s)\n", len(stale))
	}
	return StoreSummary{Options: len(records), Stale: len(stale)}, nil
}

// StoreTranslations upserts the bundle entries under namespace. Keys
// outside the namespace are ignored; keys whose option is not in the
// catalog are stored anyway with a cleared option reference, so the
// translation memory outlives renamed options. The bundle file's mod
// time gates re-runs the same way StoreOptions gates the source scan.
func (s *Store) StoreTranslations(ctx context.Context, doc *bundle.Document, namespace, bundlePath string, force bool, w io.Writer) (StoreSummary, error) {
	info, err := os.Stat(bundlePath)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("stat bundle %s: %w", bundlePath, err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	if skip, err := s.sourceUnchanged(ctx, bundlePath, modTime, force); err != nil {
		return StoreSummary{}, err
	} else if skip {
		fmt.Fprintf(w, "skipped %s (unchanged)\n", bundlePath)
		return StoreSummary{Skipped: 1}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO translations (l10n_key, option_key, field, value, merged_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(l10n_key) DO UPDATE SET
			option_key=excluded.option_key, field=excluded.field,
			value=excluded.value, merged_at=excluded.merged_at`)
	if err != nil {
		return StoreSummary{}, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	mergedAt := time.Now().UTC().Format(time.RFC3339)
	var summary StoreSummary
	for _, key := range doc.Keys() {
		optionKey, field, ok := types.ParseLocalizationKey(namespace, key)
		if !ok {
			continue
		}
		value, _ := doc.Get(key)

		var optionRef any
		var linked int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM options WHERE key = ?`, optionKey,
		).Scan(&linked); err != nil {
			return StoreSummary{}, fmt.Errorf("checking option %s: %w", optionKey, err)
		}
		if linked > 0 {
			optionRef = optionKey
		} else {
			summary.Unlinked++
		}

		if _, err := stmt.ExecContext(ctx, key, optionRef, string(field), value, mergedAt); err != nil {
			return StoreSummary{}, fmt.Errorf("upserting translation %s: %w", key, err)
		}
		summary.Translations++
	}

	if err := recordScan(ctx, tx, bundlePath, modTime); err != nil {
		return StoreSummary{}, err
	}
	if err := tx.Commit(); err != nil {
		return StoreSummary{}, fmt.Errorf("committing: %w", err)
	}

	if summary.Unlinked > 0 {
		fmt.Fprintf(w, "stored %d translations from %s (%d without a matching option)\n",
			summary.Translations, bundlePath, summary.Unlinked)
	} else {
		fmt.Fprintf(w, "stored %d translations from %s\n", summary.Translations, bundlePath)
	}
	return summary, nil
}

// sourceUnchanged reports whether sourcePath was already indexed at
// modTime. force always reports false.
func (s *Store) sourceUnchanged(ctx context.Context, sourcePath, modTime string, force bool) (bool, error) {
	if force {
		return false, nil
	}
	var stored string
	err := s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM scan_status WHERE source_path = ?`, sourcePath,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking scan status: %w", err)
	}
	return stored == modTime, nil
}

func staleOptionKeys(ctx context.Context, tx *sql.Tx, sourcePath string, current map[string]bool) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT key FROM options WHERE source_path = ?`, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("listing indexed options: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning option key: %w", err)
		}
		if !current[key] {
			stale = append(stale, key)
		}
	}
	return stale, rows.Err()
}

func recordScan(ctx context.Context, tx *sql.Tx, sourcePath, modTime string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO scan_status (source_path, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		sourcePath, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating scan status: %w", err)
	}
	return nil
}
