package httpserver

import (
	"net/http"
	"testing"

	projecthttp "fieldops/contexts/field-operations/project-service/transport/http"
)

func TestProjectCreateRequiresOrgAdmin(t *testing.T) {
	server := newTestServer()

	// Bootstrap the admin first so the member token is an ordinary caller.
	doJSON(t, server, http.MethodGet, "/api/v1/tenant/role", "admin-token", nil)

	rr := doJSON(t, server, http.MethodPost, "/api/v1/projects", "member-token", map[string]any{"name": "Harbor Site"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site", "timezone": "Asia/Karachi"})

	rr := doJSON(t, server, http.MethodGet, "/api/v1/projects/"+projectID, "admin-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var project projecthttp.ProjectDTO
	decodeResponse(t, rr, &project)
	if project.Name != "Harbor Site" || project.TenantID != "tenant_1" {
		t.Fatalf("unexpected project %+v", project)
	}

	rr = doJSON(t, server, http.MethodPatch, "/api/v1/projects/"+projectID, "admin-token", map[string]any{"name": "Harbor Site Phase 2"})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	decodeResponse(t, rr, &project)
	if project.Name != "Harbor Site Phase 2" || project.Timezone != "Asia/Karachi" {
		t.Fatalf("partial update touched the wrong fields: %+v", project)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/projects", "admin-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list projecthttp.ListProjectsResponse
	decodeResponse(t, rr, &list)
	if len(list.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(list.Projects))
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/v1/projects/"+projectID, "admin-token", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/projects/"+projectID, "admin-token", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProjectViewerCannotManage(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})
	addProjectMember(t, server, projectID, "user_viewer", "viewer")

	rr := doJSON(t, server, http.MethodGet, "/api/v1/projects/"+projectID, "viewer-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("viewer read: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPatch, "/api/v1/projects/"+projectID, "viewer-token", map[string]any{"name": "Renamed"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("viewer update: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/members", "viewer-token", map[string]any{
		"user_id": "user_member",
		"role":    "member",
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("viewer member add: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProjectMemberListScopedByVisibility(t *testing.T) {
	server := newTestServer()
	visibleID := createTestProject(t, server, map[string]any{"name": "Visible Site"})
	createTestProject(t, server, map[string]any{"name": "Hidden Site"})
	addProjectMember(t, server, visibleID, "user_member", "member")

	rr := doJSON(t, server, http.MethodGet, "/api/v1/projects", "member-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list projecthttp.ListProjectsResponse
	decodeResponse(t, rr, &list)
	if len(list.Projects) != 1 || list.Projects[0].ID != visibleID {
		t.Fatalf("expected only the assigned project, got %+v", list.Projects)
	}

	// The org admin sees every tenant project.
	rr = doJSON(t, server, http.MethodGet, "/api/v1/projects", "admin-token", nil)
	decodeResponse(t, rr, &list)
	if len(list.Projects) != 2 {
		t.Fatalf("expected tenant-wide listing for org admin, got %d projects", len(list.Projects))
	}
}
