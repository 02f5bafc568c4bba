package httpserver

import (
	"net/http"

	accesshttp "fieldops/contexts/identity-access/access-control/transport/http"
)

func writeAccessError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accesshttp.ErrorResponse{Code: code, Message: message})
}

func (s *Server) handleResolveTenantRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.access.Handler.ResolveTenantRoleHandler(r.Context(), claims.TenantID, claims.UserID)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheckAccess(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req accesshttp.CheckAccessRequest
	if !s.decodeJSON(w, r, &req, writeAccessError) {
		return
	}
	resp, err := s.access.Handler.CheckAccessHandler(r.Context(), claims.TenantID, claims.UserID, req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTenantMembers(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.access.Handler.ListMembersHandler(r.Context(), claims.TenantID, claims.UserID)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddTenantMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req accesshttp.AddTenantMemberRequest
	if !s.decodeJSON(w, r, &req, writeAccessError) {
		return
	}
	resp, err := s.access.Handler.AddMemberHandler(r.Context(), claims.TenantID, claims.UserID, req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateTenantMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req accesshttp.UpdateTenantMemberRequest
	if !s.decodeJSON(w, r, &req, writeAccessError) {
		return
	}
	resp, err := s.access.Handler.UpdateMemberHandler(r.Context(), claims.TenantID, claims.UserID, r.PathValue("user_id"), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveTenantMember(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.access.Handler.RemoveMemberHandler(r.Context(), claims.TenantID, claims.UserID, r.PathValue("user_id")); err != nil {
		writeAccessDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
