package ports

import (
	"context"
	"time"

	"fieldops/contexts/field-operations/task-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// StatusUpdate carries the mutable task-status fields; nil means leave
// unchanged.
type StatusUpdate struct {
	Name      *string
	SortOrder *int
}

// TaskUpdate carries the mutable task fields; nil means leave unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	StatusID    *string
	AssigneeID  *string
	DueAt       *time.Time
}

// Repository is the persistence boundary for the task board. Statuses list
// by sort order ascending; tasks and update notes list newest first.
// Update methods report found=false for rows outside the project.
type Repository interface {
	InsertStatus(ctx context.Context, status entities.TaskStatus) error
	GetStatus(ctx context.Context, projectID string, statusID string) (entities.TaskStatus, bool, error)
	ListStatuses(ctx context.Context, projectID string) ([]entities.TaskStatus, error)
	UpdateStatus(ctx context.Context, projectID string, statusID string, update StatusUpdate) (entities.TaskStatus, bool, error)
	DeleteStatus(ctx context.Context, projectID string, statusID string) error

	InsertTask(ctx context.Context, task entities.Task) error
	GetTask(ctx context.Context, projectID string, taskID string) (entities.Task, bool, error)
	ListTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, projectID string, taskID string, update TaskUpdate, updatedAt time.Time) (entities.Task, bool, error)
	DeleteTask(ctx context.Context, projectID string, taskID string) error

	InsertUpdateNote(ctx context.Context, note entities.TaskUpdateNote) error
	ListUpdateNotes(ctx context.Context, projectID string, taskID string) ([]entities.TaskUpdateNote, error)
}
