// Package sqlite archives compiled reports in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite archive with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL so a reader can list while a run is archiving
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	group_name TEXT,
	year INTEGER NOT NULL,
	messages INTEGER NOT NULL,
	generated_at TEXT NOT NULL,
	payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_generated_at ON reports(generated_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveReport inserts or replaces a report; the full deck is stored as a JSON
// payload alongside the listing columns.
func (s *sqliteStore) SaveReport(ctx context.Context, r report.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO reports (id, group_name, year, messages, generated_at, payload)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	group_name=excluded.group_name,
	year=excluded.year,
	messages=excluded.messages,
	generated_at=excluded.generated_at,
	payload=excluded.payload;
`,
		r.ID,
		r.Metadata.GroupName,
		r.Metadata.Year,
		r.Metadata.MessagesInYear,
		r.GeneratedAt.UTC().Format(time.RFC3339Nano),
		string(payload),
	)
	return err
}

// GetReport loads a report by ID, decoding the stored payload.
func (s *sqliteStore) GetReport(ctx context.Context, id string) (report.Report, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM reports WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return report.Report{}, store.ErrNotFound
	}
	if err != nil {
		return report.Report{}, err
	}

	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return report.Report{}, fmt.Errorf("decode report %s: %w", id, err)
	}
	return r, nil
}

// ListReports returns listing entries newest first. A non-positive limit
// defaults to 20.
func (s *sqliteStore) ListReports(ctx context.Context, limit int) ([]store.Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, group_name, year, messages, generated_at
FROM reports
ORDER BY generated_at DESC, id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []store.Entry
	for rows.Next() {
		var (
			e         store.Entry
			generated string
		)
		if err := rows.Scan(&e.ID, &e.GroupName, &e.Year, &e.Messages, &generated); err != nil {
			return nil, err
		}
		if parsed, perr := time.Parse(time.RFC3339Nano, generated); perr == nil {
			e.GeneratedAt = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteReport removes a report. Missing IDs return store.ErrNotFound.
func (s *sqliteStore) DeleteReport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
