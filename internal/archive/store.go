// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive writes a built citation network into a standalone SQLite
// file for downstream tooling. The file is a one-shot export artifact;
// refnet never reads it back.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/refnet/internal/network"
)

// Store manages one network archive database.
type Store struct {
	db *sql.DB
}

// NewStore creates or opens the archive database at path, creating parent
// directories and the schema as needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT,
			authors TEXT,
			arxiv_id TEXT,
			categories TEXT,
			year INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS citations (
			citing_id TEXT NOT NULL,
			cited_id TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_citing ON citations(citing_id)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_cited ON citations(cited_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveSnapshot writes the whole network in one transaction, replacing any
// previous contents. Author and category lists are stored as JSON arrays.
// The reverse index is not stored; it is derivable from citations and the
// cited_id index serves the same queries.
func (s *Store) SaveSnapshot(ctx context.Context, snap network.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"papers", "citations"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	insertPaper, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, title, authors, arxiv_id, categories, year) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing paper insert: %w", err)
	}
	defer insertPaper.Close()

	for _, p := range snap.Papers {
		authors, err := json.Marshal(p.Authors)
		if err != nil {
			return fmt.Errorf("marshaling authors for %s: %w", p.ID, err)
		}
		categories, err := json.Marshal(p.Categories)
		if err != nil {
			return fmt.Errorf("marshaling categories for %s: %w", p.ID, err)
		}
		if _, err := insertPaper.ExecContext(ctx, p.ID, p.Title, string(authors), p.ArxivID, string(categories), p.Year); err != nil {
			return fmt.Errorf("inserting paper %s: %w", p.ID, err)
		}
	}

	insertEdge, err := tx.PrepareContext(ctx,
		`INSERT INTO citations (citing_id, cited_id, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing citation insert: %w", err)
	}
	defer insertEdge.Close()

	for citing, cited := range snap.Citations {
		for i, id := range cited {
			if _, err := insertEdge.ExecContext(ctx, citing, id, i); err != nil {
				return fmt.Errorf("inserting citation %s -> %s: %w", citing, id, err)
			}
		}
	}

	return tx.Commit()
}

// PaperCount returns the number of archived papers.
func (s *Store) PaperCount(ctx context.Context) (int, error) {
	return s.count(ctx, "papers")
}

// CitationCount returns the number of archived citation edges.
func (s *Store) CitationCount(ctx context.Context) (int, error) {
	return s.count(ctx, "citations")
}

func (s *Store) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}
