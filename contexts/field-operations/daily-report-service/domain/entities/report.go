package entities

import "time"

// Entry type discriminators.
const (
	EntryTypePhoto = "photo"
	EntryTypeNote  = "note"
)

// DailyReport is one user's site diary for one project day. ReportDate is a
// calendar day in YYYY-MM-DD form; the row is unique per
// (project, user, date).
type DailyReport struct {
	ID         string
	ProjectID  string
	UserID     string
	ReportDate string
	CreatedAt  time.Time
}

// ReportEntry is one diary item. Content holds note text or a storage ref
// for photos; SortOrder orders entries within the report.
type ReportEntry struct {
	ID        string
	ReportID  string
	ProjectID string
	Type      string
	Content   string
	SortOrder int
	CreatedAt time.Time
}

// AttributedEntry pairs an entry with the reporting user, for office views
// spanning every report of a project day.
type AttributedEntry struct {
	ReportEntry
	UserID string
}
