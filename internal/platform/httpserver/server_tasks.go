package httpserver

import (
	"errors"
	"net/http"

	taskerrors "fieldops/contexts/field-operations/task-service/domain/errors"
	taskhttp "fieldops/contexts/field-operations/task-service/transport/http"
	"fieldops/contexts/identity-access/access-control/domain/services"
)

func writeTaskError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, taskhttp.ErrorResponse{Code: code, Message: message})
}

func writeTaskDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taskerrors.ErrTaskNotFound):
		writeTaskError(w, http.StatusNotFound, "task_not_found", err.Error())
	case errors.Is(err, taskerrors.ErrTaskStatusNotFound):
		writeTaskError(w, http.StatusNotFound, "task_status_not_found", err.Error())
	case errors.Is(err, taskerrors.ErrInvalidRequest):
		writeTaskError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeTaskError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListTaskStatuses(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewProject) {
		return
	}
	resp, err := s.tasks.Handler.ListStatusesHandler(r.Context(), projectID)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTaskStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTaskStatuses) {
		return
	}
	var req taskhttp.CreateStatusRequest
	if !s.decodeJSON(w, r, &req, writeTaskError) {
		return
	}
	resp, err := s.tasks.Handler.CreateStatusHandler(r.Context(), projectID, req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTaskStatuses) {
		return
	}
	var req taskhttp.UpdateStatusRequest
	if !s.decodeJSON(w, r, &req, writeTaskError) {
		return
	}
	resp, err := s.tasks.Handler.UpdateStatusHandler(r.Context(), projectID, r.PathValue("status_id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTaskStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTaskStatuses) {
		return
	}
	if err := s.tasks.Handler.DeleteStatusHandler(r.Context(), projectID, r.PathValue("status_id")); err != nil {
		writeTaskDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewProject) {
		return
	}
	resp, err := s.tasks.Handler.ListTasksHandler(r.Context(), projectID)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTasks) {
		return
	}
	var req taskhttp.CreateTaskRequest
	if !s.decodeJSON(w, r, &req, writeTaskError) {
		return
	}
	resp, err := s.tasks.Handler.CreateTaskHandler(r.Context(), projectID, claims.UserID, req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewProject) {
		return
	}
	resp, err := s.tasks.Handler.GetTaskHandler(r.Context(), projectID, r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTasks) {
		return
	}
	var req taskhttp.UpdateTaskRequest
	if !s.decodeJSON(w, r, &req, writeTaskError) {
		return
	}
	resp, err := s.tasks.Handler.UpdateTaskHandler(r.Context(), projectID, r.PathValue("task_id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTasks) {
		return
	}
	if err := s.tasks.Handler.DeleteTaskHandler(r.Context(), projectID, r.PathValue("task_id")); err != nil {
		writeTaskDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTaskUpdates(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewProject) {
		return
	}
	resp, err := s.tasks.Handler.ListUpdateNotesHandler(r.Context(), projectID, r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddTaskUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageTasks) {
		return
	}
	var req taskhttp.AddUpdateNoteRequest
	if !s.decodeJSON(w, r, &req, writeTaskError) {
		return
	}
	resp, err := s.tasks.Handler.AddUpdateNoteHandler(r.Context(), projectID, r.PathValue("task_id"), claims.UserID, req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
