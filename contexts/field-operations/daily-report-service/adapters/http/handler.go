package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/field-operations/daily-report-service/application"
	"fieldops/contexts/field-operations/daily-report-service/domain/entities"
	httptransport "fieldops/contexts/field-operations/daily-report-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetMyReportHandler(ctx context.Context, projectID string, userID string, date string) (httptransport.DailyReportDTO, error) {
	report, err := h.Service.GetOrCreateReport(ctx, projectID, userID, date)
	if err != nil {
		return httptransport.DailyReportDTO{}, err
	}
	return reportDTO(report), nil
}

func (h Handler) AppendEntryHandler(ctx context.Context, projectID string, userID string, request httptransport.AppendEntryRequest) (httptransport.ReportEntryDTO, error) {
	entry, err := h.Service.AppendEntry(ctx, projectID, userID, application.AppendEntryInput{
		ReportDate: request.ReportDate,
		Type:       request.Type,
		Content:    request.Content,
		SortOrder:  request.SortOrder,
	})
	if err != nil {
		return httptransport.ReportEntryDTO{}, err
	}
	return entryDTO(entry), nil
}

func (h Handler) ListMyEntriesHandler(ctx context.Context, projectID string, userID string, date string) (httptransport.ListEntriesResponse, error) {
	entries, err := h.Service.ListMyEntries(ctx, projectID, userID, date)
	if err != nil {
		return httptransport.ListEntriesResponse{}, err
	}
	out := httptransport.ListEntriesResponse{Entries: make([]httptransport.ReportEntryDTO, 0, len(entries))}
	for _, entry := range entries {
		out.Entries = append(out.Entries, entryDTO(entry))
	}
	return out, nil
}

func (h Handler) ListProjectEntriesHandler(ctx context.Context, projectID string, date string) (httptransport.ListEntriesResponse, error) {
	entries, err := h.Service.ListProjectEntries(ctx, projectID, date)
	if err != nil {
		return httptransport.ListEntriesResponse{}, err
	}
	out := httptransport.ListEntriesResponse{Entries: make([]httptransport.ReportEntryDTO, 0, len(entries))}
	for _, entry := range entries {
		dto := entryDTO(entry.ReportEntry)
		dto.UserID = entry.UserID
		out.Entries = append(out.Entries, dto)
	}
	return out, nil
}

func (h Handler) ListReportsHandler(ctx context.Context, projectID string, date string) (httptransport.ListReportsResponse, error) {
	reports, err := h.Service.ListReports(ctx, projectID, date)
	if err != nil {
		return httptransport.ListReportsResponse{}, err
	}
	out := httptransport.ListReportsResponse{Reports: make([]httptransport.DailyReportDTO, 0, len(reports))}
	for _, report := range reports {
		out.Reports = append(out.Reports, reportDTO(report))
	}
	return out, nil
}

// ReportEntriesHandler resolves a report by id with its items and returns
// the owning project id for the caller's access check.
func (h Handler) ReportEntriesHandler(ctx context.Context, reportID string) (string, httptransport.ListEntriesResponse, error) {
	report, entries, err := h.Service.GetReportEntries(ctx, reportID)
	if err != nil {
		return "", httptransport.ListEntriesResponse{}, err
	}
	out := httptransport.ListEntriesResponse{Entries: make([]httptransport.ReportEntryDTO, 0, len(entries))}
	for _, entry := range entries {
		out.Entries = append(out.Entries, entryDTO(entry))
	}
	return report.ProjectID, out, nil
}

func (h Handler) RecentDatesHandler(ctx context.Context, projectID string, limit int) (httptransport.RecentDatesResponse, error) {
	dates, err := h.Service.RecentDates(ctx, projectID, limit)
	if err != nil {
		return httptransport.RecentDatesResponse{}, err
	}
	return httptransport.RecentDatesResponse{Dates: dates}, nil
}

func reportDTO(report entities.DailyReport) httptransport.DailyReportDTO {
	return httptransport.DailyReportDTO{
		ID:         report.ID,
		ProjectID:  report.ProjectID,
		UserID:     report.UserID,
		ReportDate: report.ReportDate,
		CreatedAt:  report.CreatedAt,
	}
}

func entryDTO(entry entities.ReportEntry) httptransport.ReportEntryDTO {
	return httptransport.ReportEntryDTO{
		ID:        entry.ID,
		ReportID:  entry.ReportID,
		ProjectID: entry.ProjectID,
		Type:      entry.Type,
		Content:   entry.Content,
		SortOrder: entry.SortOrder,
		CreatedAt: entry.CreatedAt,
	}
}
