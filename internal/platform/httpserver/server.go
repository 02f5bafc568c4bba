package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	attendanceservice "fieldops/contexts/field-operations/attendance-service"
	dailyreportservice "fieldops/contexts/field-operations/daily-report-service"
	materialservice "fieldops/contexts/field-operations/material-service"
	projectservice "fieldops/contexts/field-operations/project-service"
	taskservice "fieldops/contexts/field-operations/task-service"
	expensewallet "fieldops/contexts/finance-core/expense-wallet"
	accesscontrol "fieldops/contexts/identity-access/access-control"
	"fieldops/contexts/identity-access/access-control/application"
	accessentities "fieldops/contexts/identity-access/access-control/domain/entities"
	accesserrors "fieldops/contexts/identity-access/access-control/domain/errors"
	"fieldops/contexts/identity-access/access-control/domain/services"
	"fieldops/internal/platform/identity"

	_ "fieldops/internal/platform/httpserver/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Modules groups the context modules mounted on the server.
type Modules struct {
	Access     accesscontrol.Module
	Projects   projectservice.Module
	Tasks      taskservice.Module
	Materials  materialservice.Module
	Wallet     expensewallet.Module
	Attendance attendanceservice.Module
	Reports    dailyreportservice.Module
}

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	verifier identity.Verifier

	access     accesscontrol.Module
	projects   projectservice.Module
	tasks      taskservice.Module
	materials  materialservice.Module
	wallet     expensewallet.Module
	attendance attendanceservice.Module
	reports    dailyreportservice.Module
}

func New(modules Modules, verifier identity.Verifier, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		verifier:   verifier,
		access:     modules.Access,
		projects:   modules.Projects,
		tasks:      modules.Tasks,
		materials:  modules.Materials,
		wallet:     modules.Wallet,
		attendance: modules.Attendance,
		reports:    modules.Reports,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/v1/tenant/role", s.handleResolveTenantRole)
	s.mux.HandleFunc("POST /api/v1/access/check", s.handleCheckAccess)
	s.mux.HandleFunc("GET /api/v1/tenant/members", s.handleListTenantMembers)
	s.mux.HandleFunc("POST /api/v1/tenant/members", s.handleAddTenantMember)
	s.mux.HandleFunc("PATCH /api/v1/tenant/members/{user_id}", s.handleUpdateTenantMember)
	s.mux.HandleFunc("DELETE /api/v1/tenant/members/{user_id}", s.handleRemoveTenantMember)

	s.mux.HandleFunc("POST /api/v1/projects", s.handleCreateProject)
	s.mux.HandleFunc("GET /api/v1/projects", s.handleListProjects)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}", s.handleGetProject)
	s.mux.HandleFunc("PATCH /api/v1/projects/{project_id}", s.handleUpdateProject)
	s.mux.HandleFunc("DELETE /api/v1/projects/{project_id}", s.handleDeleteProject)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/members", s.handleListProjectMembers)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/members", s.handleAddProjectMember)
	s.mux.HandleFunc("PATCH /api/v1/projects/{project_id}/members/{user_id}", s.handleUpdateProjectMember)
	s.mux.HandleFunc("DELETE /api/v1/projects/{project_id}/members/{user_id}", s.handleRemoveProjectMember)

	s.mux.HandleFunc("GET /api/v1/master-materials", s.handleListMasterMaterials)
	s.mux.HandleFunc("POST /api/v1/master-materials", s.handleCreateMasterMaterial)
	s.mux.HandleFunc("GET /api/v1/master-materials/{material_id}", s.handleGetMasterMaterial)
	s.mux.HandleFunc("PATCH /api/v1/master-materials/{material_id}", s.handleUpdateMasterMaterial)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/materials", s.handleListMaterials)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/materials", s.handleCreateMaterial)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/materials/balances", s.handleListMaterialsWithBalances)
	s.mux.HandleFunc("PATCH /api/v1/projects/{project_id}/materials/{material_id}", s.handleUpdateMaterial)
	s.mux.HandleFunc("DELETE /api/v1/projects/{project_id}/materials/{material_id}", s.handleDeleteMaterial)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/materials/{material_id}/stock", s.handleAddStockEntry)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/materials/{material_id}/stock", s.handleStockHistory)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/materials/{material_id}/stock/balance", s.handleStockBalance)

	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/wallet/credit", s.handleWalletCredit)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/wallet/debit", s.handleWalletDebit)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/wallet/balance", s.handleWalletBalance)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/wallet/transactions", s.handleWalletTransactions)

	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/attendance/check-in", s.handleAttendanceCheckIn)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/attendance/check-out", s.handleAttendanceCheckOut)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/attendance", s.handleListAttendance)

	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/task-statuses", s.handleListTaskStatuses)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/task-statuses", s.handleCreateTaskStatus)
	s.mux.HandleFunc("PATCH /api/v1/projects/{project_id}/task-statuses/{status_id}", s.handleUpdateTaskStatus)
	s.mux.HandleFunc("DELETE /api/v1/projects/{project_id}/task-statuses/{status_id}", s.handleDeleteTaskStatus)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/tasks", s.handleListTasks)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/tasks", s.handleCreateTask)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/tasks/{task_id}", s.handleGetTask)
	s.mux.HandleFunc("PATCH /api/v1/projects/{project_id}/tasks/{task_id}", s.handleUpdateTask)
	s.mux.HandleFunc("DELETE /api/v1/projects/{project_id}/tasks/{task_id}", s.handleDeleteTask)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/tasks/{task_id}/updates", s.handleListTaskUpdates)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/tasks/{task_id}/updates", s.handleAddTaskUpdate)

	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/reports", s.handleListDailyReports)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/reports/recent-dates", s.handleRecentReportDates)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/reports/my", s.handleGetMyDailyReport)
	s.mux.HandleFunc("GET /api/v1/projects/{project_id}/reports/entries", s.handleListDailyReportEntries)
	s.mux.HandleFunc("POST /api/v1/projects/{project_id}/reports/entries", s.handleAddDailyReportEntry)
	s.mux.HandleFunc("GET /api/v1/reports/{report_id}/entries", s.handleReportEntriesByID)

	s.mux.HandleFunc("GET /api/v1/dashboard/summary", s.handleDashboardSummary)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// authenticate resolves the bearer token into verified claims. A missing or
// unknown token is 401; a token without a tenant claim is 403.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (identity.Claims, bool) {
	token := identity.TokenFromAuthorizationHeader(r.Header.Get("Authorization"))
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorBody{Code: "unauthorized", Message: "Authorization bearer token is required"})
		return identity.Claims{}, false
	}
	claims, ok, err := s.verifier.Verify(r.Context(), token)
	if err != nil {
		s.logger.Error("token verification failed",
			"event", "token_verification_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Code: "internal_error", Message: "internal server error"})
		return identity.Claims{}, false
	}
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Code: "unauthorized", Message: "unknown or expired token"})
		return identity.Claims{}, false
	}
	if strings.TrimSpace(claims.TenantID) == "" {
		writeJSON(w, http.StatusForbidden, errorBody{Code: "tenant_required", Message: "token carries no tenant claim"})
		return identity.Claims{}, false
	}
	return claims, true
}

// requireProjectAccess runs the access resolver for one project operation
// and writes the appropriate error response on denial.
func (s *Server) requireProjectAccess(w http.ResponseWriter, r *http.Request, claims identity.Claims, projectID string, permission string) bool {
	_, err := s.access.Service.ResolveProjectAccess(r.Context(), application.AccessQuery{
		ProjectID:  projectID,
		TenantID:   claims.TenantID,
		UserID:     claims.UserID,
		Permission: permission,
	})
	if err != nil {
		writeAccessDomainError(w, err)
		return false
	}
	return true
}

// resolveProjectAccess is requireProjectAccess returning the resolved
// grant, for handlers whose behavior depends on the project role.
func (s *Server) resolveProjectAccess(w http.ResponseWriter, r *http.Request, claims identity.Claims, projectID string, permission string) (accessentities.ProjectAccess, bool) {
	grant, err := s.access.Service.ResolveProjectAccess(r.Context(), application.AccessQuery{
		ProjectID:  projectID,
		TenantID:   claims.TenantID,
		UserID:     claims.UserID,
		Permission: permission,
	})
	if err != nil {
		writeAccessDomainError(w, err)
		return accessentities.ProjectAccess{}, false
	}
	return grant, true
}

// isOrgAdmin reports whether the caller holds the org_admin tenant role,
// applying the bootstrap rule for empty tenants.
func (s *Server) isOrgAdmin(r *http.Request, claims identity.Claims) (bool, error) {
	role, found, err := s.access.Service.ResolveTenantRole(r.Context(), claims.TenantID, claims.UserID)
	if err != nil {
		return false, err
	}
	return found && role == services.TenantRoleOrgAdmin, nil
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrProjectNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Code: "project_not_found", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrNotAProjectMember):
		writeJSON(w, http.StatusForbidden, errorBody{Code: "not_a_project_member", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrInsufficientPermission):
		writeJSON(w, http.StatusForbidden, errorBody{Code: "insufficient_permission", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrOrgAdminRequired):
		writeJSON(w, http.StatusForbidden, errorBody{Code: "org_admin_required", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrTenantRequired):
		writeJSON(w, http.StatusForbidden, errorBody{Code: "tenant_required", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrInvalidRequest), errors.Is(err, accesserrors.ErrInvalidRole):
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "invalid_request", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrUserNotFound), errors.Is(err, accesserrors.ErrMemberNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Code: "not_found", Message: err.Error()})
	case errors.Is(err, accesserrors.ErrMemberAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody{Code: "member_already_exists", Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Code: "internal_error", Message: "internal server error"})
	}
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, target any, writeError func(http.ResponseWriter, int, string, string)) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
