package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/field-operations/task-service/application"
	"fieldops/contexts/field-operations/task-service/domain/entities"
	"fieldops/contexts/field-operations/task-service/ports"
	httptransport "fieldops/contexts/field-operations/task-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateStatusHandler(ctx context.Context, projectID string, request httptransport.CreateStatusRequest) (httptransport.TaskStatusDTO, error) {
	status, err := h.Service.CreateStatus(ctx, projectID, application.CreateStatusInput{
		Name:      request.Name,
		SortOrder: request.SortOrder,
	})
	if err != nil {
		return httptransport.TaskStatusDTO{}, err
	}
	return statusDTO(status), nil
}

func (h Handler) ListStatusesHandler(ctx context.Context, projectID string) (httptransport.ListStatusesResponse, error) {
	statuses, err := h.Service.ListStatuses(ctx, projectID)
	if err != nil {
		return httptransport.ListStatusesResponse{}, err
	}
	out := httptransport.ListStatusesResponse{Statuses: make([]httptransport.TaskStatusDTO, 0, len(statuses))}
	for _, status := range statuses {
		out.Statuses = append(out.Statuses, statusDTO(status))
	}
	return out, nil
}

func (h Handler) UpdateStatusHandler(ctx context.Context, projectID string, statusID string, request httptransport.UpdateStatusRequest) (httptransport.TaskStatusDTO, error) {
	status, err := h.Service.UpdateStatus(ctx, projectID, statusID, ports.StatusUpdate{
		Name:      request.Name,
		SortOrder: request.SortOrder,
	})
	if err != nil {
		return httptransport.TaskStatusDTO{}, err
	}
	return statusDTO(status), nil
}

func (h Handler) DeleteStatusHandler(ctx context.Context, projectID string, statusID string) error {
	return h.Service.DeleteStatus(ctx, projectID, statusID)
}

func (h Handler) CreateTaskHandler(ctx context.Context, projectID string, createdBy string, request httptransport.CreateTaskRequest) (httptransport.TaskDTO, error) {
	task, err := h.Service.CreateTask(ctx, projectID, createdBy, application.CreateTaskInput{
		Title:       request.Title,
		Description: request.Description,
		StatusID:    request.StatusID,
		AssigneeID:  request.AssigneeID,
		DueAt:       request.DueAt,
	})
	if err != nil {
		return httptransport.TaskDTO{}, err
	}
	return taskDTO(task), nil
}

func (h Handler) GetTaskHandler(ctx context.Context, projectID string, taskID string) (httptransport.TaskDTO, error) {
	task, err := h.Service.GetTask(ctx, projectID, taskID)
	if err != nil {
		return httptransport.TaskDTO{}, err
	}
	return taskDTO(task), nil
}

func (h Handler) ListTasksHandler(ctx context.Context, projectID string) (httptransport.ListTasksResponse, error) {
	tasks, err := h.Service.ListTasks(ctx, projectID)
	if err != nil {
		return httptransport.ListTasksResponse{}, err
	}
	out := httptransport.ListTasksResponse{Tasks: make([]httptransport.TaskDTO, 0, len(tasks))}
	for _, task := range tasks {
		out.Tasks = append(out.Tasks, taskDTO(task))
	}
	return out, nil
}

func (h Handler) UpdateTaskHandler(ctx context.Context, projectID string, taskID string, request httptransport.UpdateTaskRequest) (httptransport.TaskDTO, error) {
	task, err := h.Service.UpdateTask(ctx, projectID, taskID, ports.TaskUpdate{
		Title:       request.Title,
		Description: request.Description,
		StatusID:    request.StatusID,
		AssigneeID:  request.AssigneeID,
		DueAt:       request.DueAt,
	})
	if err != nil {
		return httptransport.TaskDTO{}, err
	}
	return taskDTO(task), nil
}

func (h Handler) DeleteTaskHandler(ctx context.Context, projectID string, taskID string) error {
	return h.Service.DeleteTask(ctx, projectID, taskID)
}

func (h Handler) AddUpdateNoteHandler(ctx context.Context, projectID string, taskID string, authorID string, request httptransport.AddUpdateNoteRequest) (httptransport.TaskUpdateNoteDTO, error) {
	note, err := h.Service.AddUpdateNote(ctx, projectID, taskID, authorID, request.Note)
	if err != nil {
		return httptransport.TaskUpdateNoteDTO{}, err
	}
	return noteDTO(note), nil
}

func (h Handler) ListUpdateNotesHandler(ctx context.Context, projectID string, taskID string) (httptransport.ListUpdateNotesResponse, error) {
	notes, err := h.Service.ListUpdateNotes(ctx, projectID, taskID)
	if err != nil {
		return httptransport.ListUpdateNotesResponse{}, err
	}
	out := httptransport.ListUpdateNotesResponse{Notes: make([]httptransport.TaskUpdateNoteDTO, 0, len(notes))}
	for _, note := range notes {
		out.Notes = append(out.Notes, noteDTO(note))
	}
	return out, nil
}

func statusDTO(status entities.TaskStatus) httptransport.TaskStatusDTO {
	return httptransport.TaskStatusDTO{
		ID:        status.ID,
		ProjectID: status.ProjectID,
		Name:      status.Name,
		SortOrder: status.SortOrder,
		CreatedAt: status.CreatedAt,
	}
}

func taskDTO(task entities.Task) httptransport.TaskDTO {
	return httptransport.TaskDTO{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		StatusID:    task.StatusID,
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
		DueAt:       task.DueAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func noteDTO(note entities.TaskUpdateNote) httptransport.TaskUpdateNoteDTO {
	return httptransport.TaskUpdateNoteDTO{
		ID:        note.ID,
		TaskID:    note.TaskID,
		ProjectID: note.ProjectID,
		AuthorID:  note.AuthorID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
	}
}
