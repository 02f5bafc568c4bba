package httpserver

import (
	"errors"
	"net/http"

	projecterrors "fieldops/contexts/field-operations/project-service/domain/errors"
	projecthttp "fieldops/contexts/field-operations/project-service/transport/http"
	"fieldops/contexts/identity-access/access-control/domain/services"
)

func writeProjectError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, projecthttp.ErrorResponse{Code: code, Message: message})
}

func writeProjectDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projecterrors.ErrProjectNotFound):
		writeProjectError(w, http.StatusNotFound, "project_not_found", err.Error())
	case errors.Is(err, projecterrors.ErrMemberNotFound):
		writeProjectError(w, http.StatusNotFound, "member_not_found", err.Error())
	case errors.Is(err, projecterrors.ErrMemberAlreadyExists):
		writeProjectError(w, http.StatusConflict, "member_already_exists", err.Error())
	case errors.Is(err, projecterrors.ErrInvalidRequest), errors.Is(err, projecterrors.ErrInvalidRole):
		writeProjectError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeProjectError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.access.Service.RequireOrgAdmin(r.Context(), claims.TenantID, claims.UserID); err != nil {
		writeAccessDomainError(w, err)
		return
	}
	var req projecthttp.CreateProjectRequest
	if !s.decodeJSON(w, r, &req, writeProjectError) {
		return
	}
	resp, err := s.projects.Handler.CreateProjectHandler(r.Context(), claims.TenantID, claims.UserID, req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	tenantWide, err := s.isOrgAdmin(r, claims)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	resp, err := s.projects.Handler.ListProjectsHandler(r.Context(), claims.TenantID, claims.UserID, tenantWide)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewProject) {
		return
	}
	resp, err := s.projects.Handler.GetProjectHandler(r.Context(), projectID, claims.TenantID)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageProject) {
		return
	}
	var req projecthttp.UpdateProjectRequest
	if !s.decodeJSON(w, r, &req, writeProjectError) {
		return
	}
	resp, err := s.projects.Handler.UpdateProjectHandler(r.Context(), projectID, claims.TenantID, req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageProject) {
		return
	}
	if err := s.projects.Handler.DeleteProjectHandler(r.Context(), projectID, claims.TenantID); err != nil {
		writeProjectDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListProjectMembers(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewProject) {
		return
	}
	resp, err := s.projects.Handler.ListMembersHandler(r.Context(), projectID)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddProjectMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMembers) {
		return
	}
	var req projecthttp.AddProjectMemberRequest
	if !s.decodeJSON(w, r, &req, writeProjectError) {
		return
	}
	resp, err := s.projects.Handler.AddMemberHandler(r.Context(), projectID, req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateProjectMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMembers) {
		return
	}
	var req projecthttp.UpdateProjectMemberRequest
	if !s.decodeJSON(w, r, &req, writeProjectError) {
		return
	}
	resp, err := s.projects.Handler.UpdateMemberHandler(r.Context(), projectID, r.PathValue("user_id"), req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveProjectMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMembers) {
		return
	}
	if err := s.projects.Handler.RemoveMemberHandler(r.Context(), projectID, r.PathValue("user_id")); err != nil {
		writeProjectDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
