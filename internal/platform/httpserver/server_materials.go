package httpserver

import (
	"errors"
	"net/http"

	materialerrors "fieldops/contexts/field-operations/material-service/domain/errors"
	materialhttp "fieldops/contexts/field-operations/material-service/transport/http"
	"fieldops/contexts/identity-access/access-control/domain/services"
	"fieldops/internal/shared/ledger"
)

func writeMaterialError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, materialhttp.ErrorResponse{Code: code, Message: message})
}

func writeMaterialDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, materialerrors.ErrMaterialNotFound):
		writeMaterialError(w, http.StatusNotFound, "material_not_found", err.Error())
	case errors.Is(err, materialerrors.ErrMasterMaterialNotFound):
		writeMaterialError(w, http.StatusNotFound, "master_material_not_found", err.Error())
	case errors.Is(err, materialerrors.ErrInvalidUnit):
		writeMaterialError(w, http.StatusBadRequest, "invalid_unit", err.Error())
	case errors.Is(err, materialerrors.ErrInvalidRequest):
		writeMaterialError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ledger.ErrUnknownPolarity):
		writeMaterialError(w, http.StatusBadRequest, "unknown_polarity", err.Error())
	case errors.Is(err, ledger.ErrNegativeAmount):
		writeMaterialError(w, http.StatusBadRequest, "negative_amount", err.Error())
	case errors.Is(err, ledger.ErrEmptySubject):
		writeMaterialError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeMaterialError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListMasterMaterials(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.access.Service.RequireOrgAdmin(r.Context(), claims.TenantID, claims.UserID); err != nil {
		writeAccessDomainError(w, err)
		return
	}
	resp, err := s.materials.Handler.ListMasterMaterialsHandler(r.Context(), claims.TenantID)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateMasterMaterial(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.access.Service.RequireOrgAdmin(r.Context(), claims.TenantID, claims.UserID); err != nil {
		writeAccessDomainError(w, err)
		return
	}
	var req materialhttp.CreateMasterMaterialRequest
	if !s.decodeJSON(w, r, &req, writeMaterialError) {
		return
	}
	resp, err := s.materials.Handler.CreateMasterMaterialHandler(r.Context(), claims.TenantID, req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetMasterMaterial(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.access.Service.RequireOrgAdmin(r.Context(), claims.TenantID, claims.UserID); err != nil {
		writeAccessDomainError(w, err)
		return
	}
	resp, err := s.materials.Handler.GetMasterMaterialHandler(r.Context(), r.PathValue("material_id"), claims.TenantID)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateMasterMaterial(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.access.Service.RequireOrgAdmin(r.Context(), claims.TenantID, claims.UserID); err != nil {
		writeAccessDomainError(w, err)
		return
	}
	var req materialhttp.UpdateMasterMaterialRequest
	if !s.decodeJSON(w, r, &req, writeMaterialError) {
		return
	}
	resp, err := s.materials.Handler.UpdateMasterMaterialHandler(r.Context(), r.PathValue("material_id"), claims.TenantID, req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewMaterials) {
		return
	}
	resp, err := s.materials.Handler.ListMaterialsHandler(r.Context(), projectID)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMaterialsWithBalances(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewMaterials) {
		return
	}
	resp, err := s.materials.Handler.ListMaterialsWithBalancesHandler(r.Context(), projectID)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMaterials) {
		return
	}
	var req materialhttp.CreateMaterialRequest
	if !s.decodeJSON(w, r, &req, writeMaterialError) {
		return
	}
	resp, err := s.materials.Handler.CreateMaterialHandler(r.Context(), projectID, claims.TenantID, req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMaterials) {
		return
	}
	var req materialhttp.UpdateMaterialRequest
	if !s.decodeJSON(w, r, &req, writeMaterialError) {
		return
	}
	resp, err := s.materials.Handler.UpdateMaterialHandler(r.Context(), r.PathValue("material_id"), projectID, req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteMaterial(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMaterials) {
		return
	}
	if err := s.materials.Handler.DeleteMaterialHandler(r.Context(), r.PathValue("material_id"), projectID); err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddStockEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageMaterials) {
		return
	}
	var req materialhttp.AddStockEntryRequest
	if !s.decodeJSON(w, r, &req, writeMaterialError) {
		return
	}
	resp, err := s.materials.Handler.AddStockEntryHandler(r.Context(), r.PathValue("material_id"), projectID, claims.UserID, req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleStockHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewMaterials) {
		return
	}
	resp, err := s.materials.Handler.StockHistoryHandler(r.Context(), r.PathValue("material_id"), projectID)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStockBalance(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewMaterials) {
		return
	}
	resp, err := s.materials.Handler.StockBalanceHandler(r.Context(), r.PathValue("material_id"), projectID)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
