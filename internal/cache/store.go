// Package cache is the page snapshot cache: a denormalised,
// fully-materialised copy of one page's tree, persisted locally so the
// read-only view mode renders without any network fetch.
//
// Snapshots are regenerated wholesale — there is no incremental patch
// path. Staleness is entirely the caller's business: each snapshot
// carries its generation timestamp, and whoever switches into the
// read-only mode decides whether that is fresh enough or forces a
// rebuild first.
//
// The store rides embedded SQLite (modernc.org/sqlite — pure Go, no C
// toolchain, ":memory:" for tests) used as a one-table key-value store.
// Storage failures never crash a render path: writes surface as
// apperror.ErrStorage, reads degrade to "no cached content" with a log
// line.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pingrid/pingrid/internal/apperror"
	"github.com/pingrid/pingrid/internal/model"
)

// Snapshot is one stored page snapshot.
type Snapshot struct {
	PageID      string         `json:"page_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Data        model.PageTree `json:"data"`
}

// SnapshotStore persists page snapshots keyed by page id. Open it once
// and share it; the sql.DB pool handles concurrent use.
type SnapshotStore struct {
	conn   *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the snapshot database at path and prepares the
// schema. Use ":memory:" in tests.
func Open(path string, logger *slog.Logger) (*SnapshotStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening snapshot store: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cache: pinging snapshot store: %w", err)
	}

	// WAL lets the view mode read while a rebuild is writing.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cache: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS page_snapshots (
			page_id      TEXT PRIMARY KEY,
			generated_at DATETIME NOT NULL,
			data         TEXT NOT NULL
		);
	`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cache: creating page_snapshots table: %w", err)
	}

	return &SnapshotStore{conn: conn, logger: logger}, nil
}

// Close closes the underlying database.
func (s *SnapshotStore) Close() error {
	return s.conn.Close()
}

// Generate builds and stores the snapshot for tree's page, fully
// overwriting any prior snapshot for that page id.
func (s *SnapshotStore) Generate(ctx context.Context, tree model.PageTree, topUsed []model.Bookmark) error {
	snapshot := Snapshot{
		PageID:      tree.Page.ID,
		GeneratedAt: time.Now().UTC(),
		Data:        BuildSnapshot(tree, topUsed),
	}

	data, err := json.Marshal(snapshot.Data)
	if err != nil {
		return apperror.StorageFailed("encoding snapshot", err)
	}

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO page_snapshots (page_id, generated_at, data)
		 VALUES (?, ?, ?)
		 ON CONFLICT(page_id) DO UPDATE SET
		   generated_at = excluded.generated_at,
		   data         = excluded.data`,
		snapshot.PageID,
		snapshot.GeneratedAt,
		data,
	)
	if err != nil {
		s.logger.Error("snapshot write failed",
			slog.String("page_id", snapshot.PageID),
			slog.String("error", err.Error()),
		)
		return apperror.StorageFailed("writing snapshot", err)
	}

	s.logger.Info("snapshot generated",
		slog.String("page_id", snapshot.PageID),
		slog.Int("sections", len(snapshot.Data.Sections)),
	)
	return nil
}

// Get returns the last-built snapshot for a page, or ok=false when none
// exists. It never triggers a build, and a storage or decode failure
// degrades to "no cache" with a log line rather than reaching the caller.
func (s *SnapshotStore) Get(ctx context.Context, pageID string) (*Snapshot, bool) {
	var (
		snapshot = Snapshot{PageID: pageID}
		raw      []byte
	)
	err := s.conn.QueryRowContext(ctx,
		`SELECT generated_at, data FROM page_snapshots WHERE page_id = ?`,
		pageID,
	).Scan(&snapshot.GeneratedAt, &raw)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.logger.Error("snapshot read failed",
			slog.String("page_id", pageID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	if err := json.Unmarshal(raw, &snapshot.Data); err != nil {
		s.logger.Error("snapshot decode failed",
			slog.String("page_id", pageID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return &snapshot, true
}

// Has reports whether a snapshot exists for the page, without decoding
// it. Used to decide whether a mode switch needs a build-first prompt.
func (s *SnapshotStore) Has(ctx context.Context, pageID string) bool {
	var n int
	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM page_snapshots WHERE page_id = ?`,
		pageID,
	).Scan(&n)
	if err != nil {
		s.logger.Error("snapshot existence check failed",
			slog.String("page_id", pageID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return n > 0
}

// Delete removes a page's snapshot, if any. Called when the page itself
// is deleted so the cache cannot serve a ghost page.
func (s *SnapshotStore) Delete(ctx context.Context, pageID string) error {
	if _, err := s.conn.ExecContext(ctx,
		`DELETE FROM page_snapshots WHERE page_id = ?`, pageID,
	); err != nil {
		return apperror.StorageFailed("deleting snapshot", err)
	}
	return nil
}
