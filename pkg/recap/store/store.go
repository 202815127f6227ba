package store

import (
	"context"
	"errors"
	"time"

	"github.com/cognicore/recap/pkg/recap/report"
)

// ErrNotFound is returned when a report ID has no stored entry.
var ErrNotFound = errors.New("report not found")

// Store is the interface for archiving compiled reports.
type Store interface {
	Close() error

	SaveReport(ctx context.Context, r report.Report) error
	GetReport(ctx context.Context, id string) (report.Report, error)
	ListReports(ctx context.Context, limit int) ([]Entry, error)
	DeleteReport(ctx context.Context, id string) error
}

// Entry is a report listing row, without the full slide payload.
type Entry struct {
	ID          string    `json:"id"`
	GroupName   string    `json:"group_name"`
	Year        int       `json:"year"`
	Messages    int       `json:"messages"`
	GeneratedAt time.Time `json:"generated_at"`
}
