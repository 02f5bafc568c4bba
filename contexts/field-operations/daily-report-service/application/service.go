package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fieldops/contexts/field-operations/daily-report-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/daily-report-service/domain/errors"
	"fieldops/contexts/field-operations/daily-report-service/ports"
)

// Recent-dates listing bounds, matching the mobile client's date picker.
const (
	DefaultRecentDatesLimit = 14
	MaxRecentDatesLimit     = 30
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// GetOrCreateReport returns the caller's report for the given day, creating
// the row on first use. An empty date means the server's UTC calendar day.
func (s Service) GetOrCreateReport(ctx context.Context, projectID string, userID string, date string) (entities.DailyReport, error) {
	projectID = strings.TrimSpace(projectID)
	userID = strings.TrimSpace(userID)
	if projectID == "" || userID == "" {
		return entities.DailyReport{}, domainerrors.ErrInvalidRequest
	}
	date, err := s.resolveDate(date)
	if err != nil {
		return entities.DailyReport{}, err
	}

	report, found, err := s.Repo.GetReport(ctx, projectID, userID, date)
	if err != nil {
		return entities.DailyReport{}, err
	}
	if found {
		return report, nil
	}

	reportID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.DailyReport{}, err
	}
	report = entities.DailyReport{
		ID:         reportID,
		ProjectID:  projectID,
		UserID:     userID,
		ReportDate: date,
		CreatedAt:  s.now(),
	}
	if err := s.Repo.InsertReport(ctx, report); err != nil {
		return entities.DailyReport{}, err
	}
	ResolveLogger(s.Logger).Info("daily report opened",
		"event", "daily_report_opened",
		"module", "field-operations/daily-report-service",
		"layer", "application",
		"project_id", projectID,
		"user_id", userID,
		"report_date", date,
	)
	return report, nil
}

// AppendEntryInput carries one new diary item. Content is note text or a
// storage ref depending on Type.
type AppendEntryInput struct {
	ReportDate string
	Type       string
	Content    string
	SortOrder  int
}

// AppendEntry adds an item to the caller's report for the given day,
// opening the report when needed.
func (s Service) AppendEntry(ctx context.Context, projectID string, userID string, input AppendEntryInput) (entities.ReportEntry, error) {
	entryType := strings.TrimSpace(input.Type)
	if entryType != entities.EntryTypePhoto && entryType != entities.EntryTypeNote {
		return entities.ReportEntry{}, domainerrors.ErrInvalidEntryType
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return entities.ReportEntry{}, domainerrors.ErrInvalidRequest
	}

	report, err := s.GetOrCreateReport(ctx, projectID, userID, input.ReportDate)
	if err != nil {
		return entities.ReportEntry{}, err
	}
	entryID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.ReportEntry{}, err
	}
	entry := entities.ReportEntry{
		ID:        entryID,
		ReportID:  report.ID,
		ProjectID: report.ProjectID,
		Type:      entryType,
		Content:   content,
		SortOrder: input.SortOrder,
		CreatedAt: s.now(),
	}
	if err := s.Repo.InsertEntry(ctx, entry); err != nil {
		return entities.ReportEntry{}, err
	}
	return entry, nil
}

// ListMyEntries returns the caller's diary items for the given day, opening
// the report when needed.
func (s Service) ListMyEntries(ctx context.Context, projectID string, userID string, date string) ([]entities.ReportEntry, error) {
	report, err := s.GetOrCreateReport(ctx, projectID, userID, date)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListEntriesByReport(ctx, report.ID)
}

// ListProjectEntries returns every user's diary items for one project day
// with reporter attribution (office view).
func (s Service) ListProjectEntries(ctx context.Context, projectID string, date string) ([]entities.AttributedEntry, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListEntriesByProjectDate(ctx, projectID, date)
}

// ListReports returns all reports filed for one project day.
func (s Service) ListReports(ctx context.Context, projectID string, date string) ([]entities.DailyReport, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListReportsByProjectDate(ctx, projectID, date)
}

// GetReportEntries resolves a report by id together with its items. Callers
// authorize against the returned report's project.
func (s Service) GetReportEntries(ctx context.Context, reportID string) (entities.DailyReport, []entities.ReportEntry, error) {
	report, found, err := s.Repo.GetReportByID(ctx, strings.TrimSpace(reportID))
	if err != nil {
		return entities.DailyReport{}, nil, err
	}
	if !found {
		return entities.DailyReport{}, nil, domainerrors.ErrReportNotFound
	}
	entries, err := s.Repo.ListEntriesByReport(ctx, report.ID)
	if err != nil {
		return entities.DailyReport{}, nil, err
	}
	return report, entries, nil
}

// RecentDates returns the most recent days with at least one report, newest
// first. The limit clamps to [1, MaxRecentDatesLimit]; zero means the
// default.
func (s Service) RecentDates(ctx context.Context, projectID string, limit int) ([]string, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	if limit <= 0 {
		limit = DefaultRecentDatesLimit
	}
	if limit > MaxRecentDatesLimit {
		limit = MaxRecentDatesLimit
	}
	return s.Repo.ListRecentReportDates(ctx, projectID, limit)
}

func (s Service) resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", domainerrors.ErrInvalidRequest
	}
	return date, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
