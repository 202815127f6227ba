package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/recap/pkg/recap/report"
	"github.com/cognicore/recap/pkg/recap/store"
)

func testReport(id string, generated time.Time) report.Report {
	r := report.Report{
		ID:          id,
		GeneratedAt: generated,
		Metadata: report.Metadata{
			Year:           2024,
			MessagesInYear: 120,
			GroupName:      "og squad",
		},
	}
	r.Slides = []report.Slide{{ID: 1, Title: "your year in messages", Type: "overview"}}
	return r
}

func TestSaveAndGet(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	r := testReport("01A", time.Now().UTC())
	if err := s.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	got, err := s.GetReport(ctx, "01A")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.ID != "01A" || got.Metadata.GroupName != "og squad" || len(got.Slides) != 1 {
		t.Errorf("got = %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	if _, err := s.GetReport(context.Background(), "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"01A", "01B", "01C"} {
		if err := s.SaveReport(ctx, testReport(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("SaveReport: %v", err)
		}
	}

	entries, err := s.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "01C" || entries[1].ID != "01B" {
		t.Errorf("order = %s, %s", entries[0].ID, entries[1].ID)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.SaveReport(ctx, testReport("01A", time.Now())); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	if err := s.DeleteReport(ctx, "01A"); err != nil {
		t.Fatalf("DeleteReport: %v", err)
	}
	if err := s.DeleteReport(ctx, "01A"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestSaveIsolation(t *testing.T) {
	s := New()
	ctx := context.Background()

	r := testReport("01A", time.Now())
	if err := s.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	r.Metadata.GroupName = "mutated"

	got, err := s.GetReport(ctx, "01A")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.Metadata.GroupName != "og squad" {
		t.Errorf("stored report was mutated through the caller's copy: %q", got.Metadata.GroupName)
	}
}
