package httpserver

import (
	"errors"
	"net/http"

	attendanceerrors "fieldops/contexts/field-operations/attendance-service/domain/errors"
	attendancehttp "fieldops/contexts/field-operations/attendance-service/transport/http"
	"fieldops/contexts/identity-access/access-control/domain/services"
)

func writeAttendanceError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, attendancehttp.ErrorResponse{Code: code, Message: message})
}

func writeAttendanceDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attendanceerrors.ErrAlreadyCheckedIn):
		writeAttendanceError(w, http.StatusConflict, "already_checked_in", err.Error())
	case errors.Is(err, attendanceerrors.ErrAlreadyCheckedOut):
		writeAttendanceError(w, http.StatusConflict, "already_checked_out", err.Error())
	case errors.Is(err, attendanceerrors.ErrCheckInRequired):
		writeAttendanceError(w, http.StatusBadRequest, "check_in_required", err.Error())
	case errors.Is(err, attendanceerrors.ErrOutsideGeofence):
		writeAttendanceError(w, http.StatusForbidden, "outside_geofence", err.Error())
	case errors.Is(err, attendanceerrors.ErrAttendanceNotFound):
		writeAttendanceError(w, http.StatusNotFound, "attendance_not_found", err.Error())
	case errors.Is(err, attendanceerrors.ErrInvalidRequest):
		writeAttendanceError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAttendanceError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleAttendanceCheckIn(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanLogAttendance) {
		return
	}
	var req attendancehttp.CheckInRequest
	if !s.decodeJSON(w, r, &req, writeAttendanceError) {
		return
	}
	resp, err := s.attendance.Handler.CheckInHandler(r.Context(), projectID, claims.UserID, req)
	if err != nil {
		writeAttendanceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAttendanceCheckOut(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanLogAttendance) {
		return
	}
	var req attendancehttp.CheckOutRequest
	if !s.decodeJSON(w, r, &req, writeAttendanceError) {
		return
	}
	resp, err := s.attendance.Handler.CheckOutHandler(r.Context(), projectID, claims.UserID, req)
	if err != nil {
		writeAttendanceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	projectID := r.PathValue("project_id")
	if !s.requireProjectAccess(w, r, claims, projectID, services.CanViewAttendance) {
		return
	}
	resp, err := s.attendance.Handler.ListByProjectDateHandler(r.Context(), projectID, r.URL.Query().Get("date"))
	if err != nil {
		writeAttendanceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
