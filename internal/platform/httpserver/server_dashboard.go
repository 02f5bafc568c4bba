package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	taskentities "fieldops/contexts/field-operations/task-service/domain/entities"
	"fieldops/contexts/identity-access/access-control/domain/services"
)

// DashboardProjectSummary is one project's card on the home screen.
type DashboardProjectSummary struct {
	ProjectID            string          `json:"project_id"`
	ProjectName          string          `json:"project_name"`
	Location             string          `json:"location,omitempty"`
	WalletBalance        decimal.Decimal `json:"wallet_balance"`
	TaskCount            int             `json:"task_count"`
	DueTasks             int             `json:"due_tasks"`
	TodayAttendanceCount int             `json:"today_attendance_count"`
}

// DashboardSummaryResponse aggregates the caller's projects. Org admins see
// every tenant project and all tasks; members see their projects and their
// assigned tasks.
type DashboardSummaryResponse struct {
	Projects           []DashboardProjectSummary `json:"projects"`
	TotalSites         int                       `json:"total_sites"`
	TotalTodayPresent  int                       `json:"total_today_present"`
	TotalWalletBalance decimal.Decimal           `json:"total_wallet_balance"`
	TotalTasks         int                       `json:"total_tasks"`
	TotalDueTasks      int                       `json:"total_due_tasks"`
}

// Status names that exempt a task from the overdue count.
var doneStatusNames = map[string]bool{
	"DONE":      true,
	"COMPLETED": true,
}

func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	role, isMember, err := s.access.Service.ResolveTenantRole(ctx, claims.TenantID, claims.UserID)
	if err != nil {
		s.dashboardError(w, err)
		return
	}
	orgAdmin := isMember && role == services.TenantRoleOrgAdmin

	projects, err := s.projects.Service.ListProjects(ctx, claims.TenantID, claims.UserID, orgAdmin)
	if err != nil {
		s.dashboardError(w, err)
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	resp := DashboardSummaryResponse{
		Projects:           make([]DashboardProjectSummary, 0, len(projects)),
		TotalWalletBalance: decimal.Zero,
	}
	for _, project := range projects {
		balance, err := s.wallet.Service.Balance(ctx, project.ID)
		if err != nil {
			s.dashboardError(w, err)
			return
		}
		tasks, err := s.tasks.Service.ListTasks(ctx, project.ID)
		if err != nil {
			s.dashboardError(w, err)
			return
		}
		statuses, err := s.tasks.Service.ListStatuses(ctx, project.ID)
		if err != nil {
			s.dashboardError(w, err)
			return
		}
		attendance, err := s.attendance.Service.ListByProjectDate(ctx, project.ID, today)
		if err != nil {
			s.dashboardError(w, err)
			return
		}

		statusNames := make(map[string]string, len(statuses))
		for _, status := range statuses {
			statusNames[status.ID] = status.Name
		}
		taskCount, dueCount := countTasks(tasks, statusNames, claims.UserID, !orgAdmin, today)

		location := project.Location
		if location == "" {
			location = project.Address
		}
		item := DashboardProjectSummary{
			ProjectID:            project.ID,
			ProjectName:          project.Name,
			Location:             location,
			WalletBalance:        balance,
			TaskCount:            taskCount,
			DueTasks:             dueCount,
			TodayAttendanceCount: len(attendance),
		}
		resp.Projects = append(resp.Projects, item)
		resp.TotalTodayPresent += item.TodayAttendanceCount
		resp.TotalWalletBalance = resp.TotalWalletBalance.Add(balance)
		resp.TotalTasks += taskCount
		resp.TotalDueTasks += dueCount
	}
	resp.TotalSites = len(resp.Projects)
	writeJSON(w, http.StatusOK, resp)
}

// countTasks returns the task and overdue counts for one project. With
// onlyMine set, only tasks assigned to userID count. A task is overdue when
// its due date is today or earlier and its status is not a done status.
func countTasks(tasks []taskentities.Task, statusNames map[string]string, userID string, onlyMine bool, today string) (int, int) {
	taskCount := 0
	dueCount := 0
	for _, task := range tasks {
		if onlyMine && task.AssigneeID != userID {
			continue
		}
		taskCount++
		if task.DueAt == nil || task.DueAt.UTC().Format("2006-01-02") > today {
			continue
		}
		name := strings.ToUpper(strings.TrimSpace(statusNames[task.StatusID]))
		if doneStatusNames[name] {
			continue
		}
		dueCount++
	}
	return taskCount, dueCount
}

func (s *Server) dashboardError(w http.ResponseWriter, err error) {
	s.logger.Error("dashboard aggregation failed",
		"event", "dashboard_aggregation_failed",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"error", err.Error(),
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{Code: "internal_error", Message: "internal server error"})
}
