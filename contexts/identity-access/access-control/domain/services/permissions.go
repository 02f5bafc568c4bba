package services

// Permission tokens. These strings are the wire contract with API callers;
// renaming one is a breaking change.
const (
	CanManageProject      = "can_manage_project"
	CanViewProject        = "can_view_project"
	CanManageTasks        = "can_manage_tasks"
	CanManageTaskStatuses = "can_manage_task_statuses"
	CanLogAttendance      = "can_log_attendance"
	CanViewAttendance     = "can_view_attendance"
	CanManageDailyReports = "can_manage_daily_reports"
	CanViewDailyReports   = "can_view_daily_reports"
	CanManageMaterials    = "can_manage_materials"
	CanViewMaterials      = "can_view_materials"
	CanManageExpense      = "can_manage_expense"
	CanViewExpense        = "can_view_expense"
	CanManageMembers      = "can_manage_members"
)

// Tenant-scope roles.
const (
	TenantRoleOrgAdmin = "org_admin"
	TenantRoleMember   = "member"
)

// Project-scope roles.
const (
	ProjectRoleAdmin  = "admin"
	ProjectRoleMember = "member"
	ProjectRoleViewer = "viewer"
)

// RolePermissions maps each project role to the permission set it holds.
var RolePermissions = map[string][]string{
	ProjectRoleAdmin: {
		CanManageProject,
		CanViewProject,
		CanManageTasks,
		CanManageTaskStatuses,
		CanLogAttendance,
		CanViewAttendance,
		CanManageDailyReports,
		CanViewDailyReports,
		CanManageMaterials,
		CanViewMaterials,
		CanManageExpense,
		CanViewExpense,
		CanManageMembers,
	},
	ProjectRoleMember: {
		CanViewProject,
		CanManageTasks,
		CanLogAttendance,
		CanViewAttendance,
		CanManageDailyReports,
		CanViewDailyReports,
		CanManageMaterials,
		CanViewMaterials,
		CanManageExpense,
		CanViewExpense,
	},
	ProjectRoleViewer: {
		CanViewProject,
		CanViewAttendance,
		CanViewDailyReports,
		CanViewMaterials,
		CanViewExpense,
	},
}

// HasPermission reports whether a project role grants a permission.
// Unknown roles hold nothing (fail closed).
func HasPermission(role string, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// IsTenantRole reports whether role is a valid tenant-scope role.
func IsTenantRole(role string) bool {
	return role == TenantRoleOrgAdmin || role == TenantRoleMember
}

// IsProjectRole reports whether role is a valid project-scope role.
func IsProjectRole(role string) bool {
	return role == ProjectRoleAdmin || role == ProjectRoleMember || role == ProjectRoleViewer
}
