package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	reporterrors "fieldops/contexts/field-operations/daily-report-service/domain/errors"
	reporthttp "fieldops/contexts/field-operations/daily-report-service/transport/http"
	"fieldops/contexts/identity-access/access-control/domain/services"
)

func writeReportError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reporthttp.ErrorResponse{Code: code, Message: message})
}

func writeReportDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporterrors.ErrReportNotFound):
		writeReportError(w, http.StatusNotFound, "report_not_found", err.Error())
	case errors.Is(err, reporterrors.ErrInvalidEntryType):
		writeReportError(w, http.StatusBadRequest, "invalid_entry_type", err.Error())
	case errors.Is(err, reporterrors.ErrInvalidRequest):
		writeReportError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeReportError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListDailyReports(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewDailyReports) {
		return
	}
	resp, err := s.reports.Handler.ListReportsHandler(r.Context(), projectID, r.URL.Query().Get("date"))
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecentReportDates(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewDailyReports) {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeReportError(w, http.StatusBadRequest, "invalid_request", "limit must be an integer")
			return
		}
		limit = parsed
	}
	resp, err := s.reports.Handler.RecentDatesHandler(r.Context(), projectID, limit)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMyDailyReport(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewDailyReports) {
		return
	}
	resp, err := s.reports.Handler.GetMyReportHandler(r.Context(), projectID, claims.UserID, r.URL.Query().Get("date"))
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Project admins see every reporter's entries for the day; other members
// see their own report only.
func (s *Server) handleListDailyReportEntries(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	grant, ok := s.resolveProjectAccess(w, r, claims, projectID, services.CanViewDailyReports)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	var resp reporthttp.ListEntriesResponse
	var err error
	if grant.Role == services.ProjectRoleAdmin {
		resp, err = s.reports.Handler.ListProjectEntriesHandler(r.Context(), projectID, date)
	} else {
		resp, err = s.reports.Handler.ListMyEntriesHandler(r.Context(), projectID, claims.UserID, date)
	}
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddDailyReportEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanManageDailyReports) {
		return
	}
	var req reporthttp.AppendEntryRequest
	if !s.decodeJSON(w, r, &req, writeReportError) {
		return
	}
	resp, err := s.reports.Handler.AppendEntryHandler(r.Context(), projectID, claims.UserID, req)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// The report id route authorizes against the owning project after the
// lookup, so foreign report ids read as not found.
func (s *Server) handleReportEntriesByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID, resp, err := s.reports.Handler.ReportEntriesHandler(r.Context(), r.PathValue("report_id"))
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewDailyReports) {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
