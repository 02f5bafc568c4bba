package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fieldops/contexts/field-operations/daily-report-service/domain/entities"
)

// Store is an in-memory daily-report repository.
type Store struct {
	mu      sync.RWMutex
	reports map[string]entities.DailyReport // key reportID
	byDay   map[string]string               // key projectID+"/"+userID+"/"+date -> reportID
	entries map[string]entities.ReportEntry
}

func NewStore() *Store {
	return &Store{
		reports: make(map[string]entities.DailyReport),
		byDay:   make(map[string]string),
		entries: make(map[string]entities.ReportEntry),
	}
}

func dayKey(projectID, userID, date string) string {
	return projectID + "/" + userID + "/" + date
}

func (s *Store) InsertReport(_ context.Context, report entities.DailyReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	s.byDay[dayKey(report.ProjectID, report.UserID, report.ReportDate)] = report.ID
	return nil
}

func (s *Store) GetReport(_ context.Context, projectID string, userID string, date string) (entities.DailyReport, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reportID, ok := s.byDay[dayKey(projectID, userID, date)]
	if !ok {
		return entities.DailyReport{}, false, nil
	}
	return s.reports[reportID], true, nil
}

func (s *Store) GetReportByID(_ context.Context, reportID string) (entities.DailyReport, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[reportID]
	if !ok {
		return entities.DailyReport{}, false, nil
	}
	return report, true, nil
}

func (s *Store) ListReportsByProjectDate(_ context.Context, projectID string, date string) ([]entities.DailyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.DailyReport
	for _, report := range s.reports {
		if report.ProjectID == projectID && report.ReportDate == date {
			out = append(out, report)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) ListRecentReportDates(_ context.Context, projectID string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	for _, report := range s.reports {
		if report.ProjectID == projectID {
			seen[report.ReportDate] = true
		}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > limit {
		dates = dates[:limit]
	}
	return dates, nil
}

func (s *Store) InsertEntry(_ context.Context, entry entities.ReportEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return nil
}

func (s *Store) ListEntriesByReport(_ context.Context, reportID string) ([]entities.ReportEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.ReportEntry
	for _, entry := range s.entries {
		if entry.ReportID == reportID {
			out = append(out, entry)
		}
	}
	sortEntries(out)
	return out, nil
}

func (s *Store) ListEntriesByProjectDate(_ context.Context, projectID string, date string) ([]entities.AttributedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.AttributedEntry
	for _, entry := range s.entries {
		if entry.ProjectID != projectID {
			continue
		}
		report, ok := s.reports[entry.ReportID]
		if !ok || report.ReportDate != date {
			continue
		}
		out = append(out, entities.AttributedEntry{ReportEntry: entry, UserID: report.UserID})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder == out[j].SortOrder {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

func sortEntries(entries []entities.ReportEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SortOrder == entries[j].SortOrder {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].SortOrder < entries[j].SortOrder
	})
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) { return uuid.NewString(), nil }
