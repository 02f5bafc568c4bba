package ports

import (
	"context"
	"time"

	"fieldops/contexts/field-operations/daily-report-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the persistence boundary for daily reports. Reports are
// unique per (project, user, date). Entry listings order by sort order then
// creation time ascending; date listings order newest date first.
type Repository interface {
	InsertReport(ctx context.Context, report entities.DailyReport) error
	GetReport(ctx context.Context, projectID string, userID string, date string) (entities.DailyReport, bool, error)
	GetReportByID(ctx context.Context, reportID string) (entities.DailyReport, bool, error)
	ListReportsByProjectDate(ctx context.Context, projectID string, date string) ([]entities.DailyReport, error)
	ListRecentReportDates(ctx context.Context, projectID string, limit int) ([]string, error)

	InsertEntry(ctx context.Context, entry entities.ReportEntry) error
	ListEntriesByReport(ctx context.Context, reportID string) ([]entities.ReportEntry, error)
	ListEntriesByProjectDate(ctx context.Context, projectID string, date string) ([]entities.AttributedEntry, error)
}
