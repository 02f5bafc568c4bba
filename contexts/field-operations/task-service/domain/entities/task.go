package entities

import "time"

// TaskStatus is one column of a project's task board. SortOrder controls
// the board ordering; names are free-form and project-local.
type TaskStatus struct {
	ID        string
	ProjectID string
	Name      string
	SortOrder int
	CreatedAt time.Time
}

// Task is a project work item. StatusID and AssigneeID are empty when
// unset; DueAt stays nil for tasks without a deadline.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	StatusID    string
	AssigneeID  string
	CreatedBy   string
	DueAt       *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdateNote is one progress note on a task. Notes are append-only.
type TaskUpdateNote struct {
	ID        string
	TaskID    string
	ProjectID string
	AuthorID  string
	Note      string
	CreatedAt time.Time
}
