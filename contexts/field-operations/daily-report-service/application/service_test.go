package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fieldops/contexts/field-operations/daily-report-service/adapters/memory"
	"fieldops/contexts/field-operations/daily-report-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/daily-report-service/domain/errors"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("rep-%03d", g.next), nil
}

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Repo:  store,
		Clock: &stepClock{current: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)},
		IDGen: &seqIDGen{},
	}
}

func TestGetOrCreateReportIsIdempotentPerDay(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	first, err := service.GetOrCreateReport(ctx, "project-1", "user-1", "2026-03-01")
	if err != nil {
		t.Fatalf("GetOrCreateReport: %v", err)
	}
	second, err := service.GetOrCreateReport(ctx, "project-1", "user-1", "2026-03-01")
	if err != nil {
		t.Fatalf("GetOrCreateReport again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same report row, got %q and %q", first.ID, second.ID)
	}

	other, err := service.GetOrCreateReport(ctx, "project-1", "user-2", "2026-03-01")
	if err != nil {
		t.Fatalf("GetOrCreateReport other user: %v", err)
	}
	if other.ID == first.ID {
		t.Fatalf("reports must be per user, got shared id %q", other.ID)
	}
}

func TestGetOrCreateReportRejectsMalformedDate(t *testing.T) {
	service := newTestService()
	_, err := service.GetOrCreateReport(context.Background(), "project-1", "user-1", "01-03-2026")
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestAppendEntryValidatesTypeAndContent(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.AppendEntry(ctx, "project-1", "user-1", AppendEntryInput{
		ReportDate: "2026-03-01",
		Type:       "video",
		Content:    "clips/a.mp4",
	})
	if !errors.Is(err, domainerrors.ErrInvalidEntryType) {
		t.Fatalf("expected ErrInvalidEntryType, got %v", err)
	}

	_, err = service.AppendEntry(ctx, "project-1", "user-1", AppendEntryInput{
		ReportDate: "2026-03-01",
		Type:       entities.EntryTypeNote,
		Content:    "   ",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for empty content, got %v", err)
	}
}

func TestAppendEntryOpensReportAndOrdersBySortOrder(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, input := range []AppendEntryInput{
		{ReportDate: "2026-03-01", Type: entities.EntryTypeNote, Content: "poured slab", SortOrder: 2},
		{ReportDate: "2026-03-01", Type: entities.EntryTypePhoto, Content: "daily_reports/p1/u1/0.jpg", SortOrder: 1},
	} {
		if _, err := service.AppendEntry(ctx, "project-1", "user-1", input); err != nil {
			t.Fatalf("AppendEntry: %v", err)
		}
	}

	entries, err := service.ListMyEntries(ctx, "project-1", "user-1", "2026-03-01")
	if err != nil {
		t.Fatalf("ListMyEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Type != entities.EntryTypePhoto || entries[1].Content != "poured slab" {
		t.Fatalf("unexpected ordering: %+v", entries)
	}
}

func TestProjectEntriesCarryReporterAttribution(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, userID := range []string{"user-1", "user-2"} {
		if _, err := service.AppendEntry(ctx, "project-1", userID, AppendEntryInput{
			ReportDate: "2026-03-01",
			Type:       entities.EntryTypeNote,
			Content:    "work by " + userID,
		}); err != nil {
			t.Fatalf("AppendEntry for %s: %v", userID, err)
		}
	}

	entries, err := service.ListProjectEntries(ctx, "project-1", "2026-03-01")
	if err != nil {
		t.Fatalf("ListProjectEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.UserID == "" {
			t.Fatalf("entry lost attribution: %+v", entry)
		}
	}

	reports, err := service.ListReports(ctx, "project-1", "2026-03-01")
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports for the day, got %d", len(reports))
	}
}

func TestGetReportEntriesByID(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	entry, err := service.AppendEntry(ctx, "project-1", "user-1", AppendEntryInput{
		ReportDate: "2026-03-01",
		Type:       entities.EntryTypeNote,
		Content:    "poured slab",
	})
	if err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}

	report, entries, err := service.GetReportEntries(ctx, entry.ReportID)
	if err != nil {
		t.Fatalf("GetReportEntries: %v", err)
	}
	if report.ProjectID != "project-1" || len(entries) != 1 {
		t.Fatalf("unexpected result report=%+v entries=%+v", report, entries)
	}

	_, _, err = service.GetReportEntries(ctx, "missing")
	if !errors.Is(err, domainerrors.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestRecentDatesNewestFirstWithLimit(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, date := range []string{"2026-03-01", "2026-03-03", "2026-03-02"} {
		if _, err := service.GetOrCreateReport(ctx, "project-1", "user-1", date); err != nil {
			t.Fatalf("GetOrCreateReport %s: %v", date, err)
		}
	}

	dates, err := service.RecentDates(ctx, "project-1", 2)
	if err != nil {
		t.Fatalf("RecentDates: %v", err)
	}
	if len(dates) != 2 || dates[0] != "2026-03-03" || dates[1] != "2026-03-02" {
		t.Fatalf("unexpected dates %v", dates)
	}
}
