package services

import "testing"

func TestAdminHoldsEveryPermission(t *testing.T) {
	all := []string{
		CanManageProject, CanViewProject, CanManageTasks, CanManageTaskStatuses,
		CanLogAttendance, CanViewAttendance, CanManageDailyReports,
		CanViewDailyReports, CanManageMaterials, CanViewMaterials,
		CanManageExpense, CanViewExpense, CanManageMembers,
	}
	for _, permission := range all {
		if !HasPermission(ProjectRoleAdmin, permission) {
			t.Fatalf("admin should hold %s", permission)
		}
	}
}

func TestViewerHoldsOnlyViewPermissions(t *testing.T) {
	if !HasPermission(ProjectRoleViewer, CanViewMaterials) {
		t.Fatalf("viewer should hold %s", CanViewMaterials)
	}
	for _, permission := range []string{
		CanManageProject, CanManageTasks, CanManageTaskStatuses,
		CanLogAttendance, CanManageDailyReports, CanManageMaterials,
		CanManageExpense, CanManageMembers,
	} {
		if HasPermission(ProjectRoleViewer, permission) {
			t.Fatalf("viewer should not hold %s", permission)
		}
	}
}

func TestMemberLacksAdminOnlyPermissions(t *testing.T) {
	for _, permission := range []string{CanManageProject, CanManageTaskStatuses, CanManageMembers} {
		if HasPermission(ProjectRoleMember, permission) {
			t.Fatalf("member should not hold %s", permission)
		}
	}
	if !HasPermission(ProjectRoleMember, CanManageTasks) {
		t.Fatalf("member should hold %s", CanManageTasks)
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	if HasPermission("superuser", CanViewProject) {
		t.Fatalf("unknown role must hold nothing")
	}
	if HasPermission("", CanViewProject) {
		t.Fatalf("empty role must hold nothing")
	}
}

func TestUnknownPermissionDenied(t *testing.T) {
	if HasPermission(ProjectRoleAdmin, "can_delete_tenant") {
		t.Fatalf("undeclared permission must not be granted")
	}
}
