// Package memstore is an in-memory store.Store for tests and one-shot runs.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/store"
)

// Store holds reports in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	reports map[string]report.Report
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{reports: make(map[string]report.Report)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveReport stores a report, replacing any previous entry with the same ID.
func (s *Store) SaveReport(ctx context.Context, r report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = copyReport(r)
	return nil
}

// GetReport returns a stored report by ID.
func (s *Store) GetReport(ctx context.Context, id string) (report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return report.Report{}, store.ErrNotFound
	}
	return copyReport(r), nil
}

// ListReports returns entries sorted newest first. A non-positive limit
// defaults to 20.
func (s *Store) ListReports(ctx context.Context, limit int) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	entries := make([]store.Entry, 0, len(s.reports))
	for _, r := range s.reports {
		entries = append(entries, store.Entry{
			ID:          r.ID,
			GroupName:   r.Metadata.GroupName,
			Year:        r.Metadata.Year,
			Messages:    r.Metadata.MessagesInYear,
			GeneratedAt: r.GeneratedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].GeneratedAt.Equal(entries[j].GeneratedAt) {
			return entries[i].GeneratedAt.After(entries[j].GeneratedAt)
		}
		return entries[i].ID > entries[j].ID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// DeleteReport removes a report. Missing IDs return store.ErrNotFound.
func (s *Store) DeleteReport(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

// copyReport deep-copies via JSON so callers cannot mutate stored slides.
func copyReport(r report.Report) report.Report {
	raw, err := json.Marshal(r)
	if err != nil {
		return r
	}
	var out report.Report
	if err := json.Unmarshal(raw, &out); err != nil {
		return r
	}
	return out
}
