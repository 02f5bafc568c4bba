package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fieldops/contexts/field-operations/task-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/task-service/domain/errors"
	"fieldops/contexts/field-operations/task-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// CreateStatusInput carries the fields for a new board column.
type CreateStatusInput struct {
	Name      string
	SortOrder int
}

func (s Service) CreateStatus(ctx context.Context, projectID string, input CreateStatusInput) (entities.TaskStatus, error) {
	projectID = strings.TrimSpace(projectID)
	name := strings.TrimSpace(input.Name)
	if projectID == "" || name == "" {
		return entities.TaskStatus{}, domainerrors.ErrInvalidRequest
	}
	statusID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.TaskStatus{}, err
	}
	status := entities.TaskStatus{
		ID:        statusID,
		ProjectID: projectID,
		Name:      name,
		SortOrder: input.SortOrder,
		CreatedAt: s.now(),
	}
	if err := s.Repo.InsertStatus(ctx, status); err != nil {
		return entities.TaskStatus{}, err
	}
	ResolveLogger(s.Logger).Info("task status created",
		"event", "task_status_created",
		"module", "field-operations/task-service",
		"layer", "application",
		"project_id", projectID,
		"status_id", statusID,
	)
	return status, nil
}

func (s Service) ListStatuses(ctx context.Context, projectID string) ([]entities.TaskStatus, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.ListStatuses(ctx, projectID)
}

func (s Service) UpdateStatus(ctx context.Context, projectID string, statusID string, update ports.StatusUpdate) (entities.TaskStatus, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return entities.TaskStatus{}, domainerrors.ErrInvalidRequest
		}
		update.Name = &trimmed
	}
	status, found, err := s.Repo.UpdateStatus(ctx, projectID, statusID, update)
	if err != nil {
		return entities.TaskStatus{}, err
	}
	if !found {
		return entities.TaskStatus{}, domainerrors.ErrTaskStatusNotFound
	}
	return status, nil
}

// DeleteStatus removes a board column. Tasks referencing it keep their
// status id; callers reassign them as a separate step.
func (s Service) DeleteStatus(ctx context.Context, projectID string, statusID string) error {
	return s.Repo.DeleteStatus(ctx, projectID, statusID)
}

// CreateTaskInput carries the fields for a new task. StatusID, when set,
// must name a status of the same project.
type CreateTaskInput struct {
	Title       string
	Description string
	StatusID    string
	AssigneeID  string
	DueAt       *time.Time
}

func (s Service) CreateTask(ctx context.Context, projectID string, createdBy string, input CreateTaskInput) (entities.Task, error) {
	projectID = strings.TrimSpace(projectID)
	title := strings.TrimSpace(input.Title)
	if projectID == "" || title == "" {
		return entities.Task{}, domainerrors.ErrInvalidRequest
	}
	statusID := strings.TrimSpace(input.StatusID)
	if statusID != "" {
		if _, found, err := s.Repo.GetStatus(ctx, projectID, statusID); err != nil {
			return entities.Task{}, err
		} else if !found {
			return entities.Task{}, domainerrors.ErrTaskStatusNotFound
		}
	}
	taskID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Task{}, err
	}
	now := s.now()
	task := entities.Task{
		ID:          taskID,
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		StatusID:    statusID,
		AssigneeID:  strings.TrimSpace(input.AssigneeID),
		CreatedBy:   createdBy,
		DueAt:       input.DueAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.InsertTask(ctx, task); err != nil {
		return entities.Task{}, err
	}
	ResolveLogger(s.Logger).Info("task created",
		"event", "task_created",
		"module", "field-operations/task-service",
		"layer", "application",
		"project_id", projectID,
		"task_id", taskID,
	)
	return task, nil
}

func (s Service) GetTask(ctx context.Context, projectID string, taskID string) (entities.Task, error) {
	task, found, err := s.Repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	if !found {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return task, nil
}

func (s Service) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.ListTasks(ctx, projectID)
}

func (s Service) UpdateTask(ctx context.Context, projectID string, taskID string, update ports.TaskUpdate) (entities.Task, error) {
	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return entities.Task{}, domainerrors.ErrInvalidRequest
		}
		update.Title = &trimmed
	}
	if update.StatusID != nil && strings.TrimSpace(*update.StatusID) != "" {
		statusID := strings.TrimSpace(*update.StatusID)
		if _, found, err := s.Repo.GetStatus(ctx, projectID, statusID); err != nil {
			return entities.Task{}, err
		} else if !found {
			return entities.Task{}, domainerrors.ErrTaskStatusNotFound
		}
		update.StatusID = &statusID
	}
	task, found, err := s.Repo.UpdateTask(ctx, projectID, taskID, update, s.now())
	if err != nil {
		return entities.Task{}, err
	}
	if !found {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return task, nil
}

func (s Service) DeleteTask(ctx context.Context, projectID string, taskID string) error {
	return s.Repo.DeleteTask(ctx, projectID, taskID)
}

// AddUpdateNote appends a progress note to a task. The note text is
// required; the task must exist in the project.
func (s Service) AddUpdateNote(ctx context.Context, projectID string, taskID string, authorID string, note string) (entities.TaskUpdateNote, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.TaskUpdateNote{}, domainerrors.ErrInvalidRequest
	}
	if _, found, err := s.Repo.GetTask(ctx, projectID, taskID); err != nil {
		return entities.TaskUpdateNote{}, err
	} else if !found {
		return entities.TaskUpdateNote{}, domainerrors.ErrTaskNotFound
	}
	noteID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.TaskUpdateNote{}, err
	}
	row := entities.TaskUpdateNote{
		ID:        noteID,
		TaskID:    taskID,
		ProjectID: projectID,
		AuthorID:  authorID,
		Note:      note,
		CreatedAt: s.now(),
	}
	if err := s.Repo.InsertUpdateNote(ctx, row); err != nil {
		return entities.TaskUpdateNote{}, err
	}
	return row, nil
}

func (s Service) ListUpdateNotes(ctx context.Context, projectID string, taskID string) ([]entities.TaskUpdateNote, error) {
	if _, found, err := s.Repo.GetTask(ctx, projectID, taskID); err != nil {
		return nil, err
	} else if !found {
		return nil, domainerrors.ErrTaskNotFound
	}
	return s.Repo.ListUpdateNotes(ctx, projectID, taskID)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
