package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DailyReportDTO struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	UserID     string    `json:"user_id"`
	ReportDate string    `json:"report_date"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListReportsResponse struct {
	Reports []DailyReportDTO `json:"reports"`
}

type AppendEntryRequest struct {
	ReportDate string `json:"report_date"`
	Type       string `json:"type"`
	Content    string `json:"content"`
	SortOrder  int    `json:"sort_order"`
}

type ReportEntryDTO struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"daily_report_id"`
	ProjectID string    `json:"project_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	// UserID is set on office-view listings spanning multiple reporters.
	UserID string `json:"user_id,omitempty"`
}

type ListEntriesResponse struct {
	Entries []ReportEntryDTO `json:"entries"`
}

type RecentDatesResponse struct {
	Dates []string `json:"dates"`
}
