package httpserver

import (
	"net/http"
	"testing"

	taskhttp "fieldops/contexts/field-operations/task-service/transport/http"
)

func createTestTaskStatus(t *testing.T, server *Server, projectID string, name string, sortOrder int) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/task-statuses", "admin-token", map[string]any{
		"name":       name,
		"sort_order": sortOrder,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create task status: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var status taskhttp.TaskStatusDTO
	decodeResponse(t, rr, &status)
	return status.ID
}

func TestTaskStatusesListBySortOrderOverHTTP(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})

	createTestTaskStatus(t, server, projectID, "Done", 3)
	createTestTaskStatus(t, server, projectID, "To Do", 1)
	createTestTaskStatus(t, server, projectID, "In Progress", 2)

	rr := doJSON(t, server, http.MethodGet, "/api/v1/projects/"+projectID+"/task-statuses", "admin-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list taskhttp.ListStatusesResponse
	decodeResponse(t, rr, &list)
	if len(list.Statuses) != 3 || list.Statuses[0].Name != "To Do" || list.Statuses[2].Name != "Done" {
		t.Fatalf("unexpected status ordering: %+v", list.Statuses)
	}
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})
	statusID := createTestTaskStatus(t, server, projectID, "To Do", 1)
	base := "/api/v1/projects/" + projectID + "/tasks"

	rr := doJSON(t, server, http.MethodPost, base, "admin-token", map[string]any{
		"title":     "Pour foundation",
		"status_id": statusID,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var task taskhttp.TaskDTO
	decodeResponse(t, rr, &task)
	if task.CreatedBy != "user_admin" || task.StatusID != statusID {
		t.Fatalf("unexpected task %+v", task)
	}

	rr = doJSON(t, server, http.MethodPatch, base+"/"+task.ID, "admin-token", map[string]any{
		"assignee_id": "user_member",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update task: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var updated taskhttp.TaskDTO
	decodeResponse(t, rr, &updated)
	if updated.AssigneeID != "user_member" {
		t.Fatalf("assignee not updated: %+v", updated)
	}

	rr = doJSON(t, server, http.MethodDelete, base+"/"+task.ID, "admin-token", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete task: expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, base+"/"+task.ID, "admin-token", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get deleted task: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestTaskCreateRejectsUnknownStatus(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})

	rr := doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/tasks", "admin-token", map[string]any{
		"title":     "Pour foundation",
		"status_id": "missing",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown status, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestTaskUpdateNotesOverHTTP(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})
	addProjectMember(t, server, projectID, "user_member", "member")
	base := "/api/v1/projects/" + projectID + "/tasks"

	rr := doJSON(t, server, http.MethodPost, base, "member-token", map[string]any{"title": "Pour foundation"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("member create task: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var task taskhttp.TaskDTO
	decodeResponse(t, rr, &task)

	rr = doJSON(t, server, http.MethodPost, base+"/"+task.ID+"/updates", "member-token", map[string]any{"note": "  "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("empty note: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	for _, note := range []string{"rebar done", "formwork set"} {
		rr = doJSON(t, server, http.MethodPost, base+"/"+task.ID+"/updates", "member-token", map[string]any{"note": note})
		if rr.Code != http.StatusCreated {
			t.Fatalf("add note %q: expected 201, got %d body=%s", note, rr.Code, rr.Body.String())
		}
	}

	rr = doJSON(t, server, http.MethodGet, base+"/"+task.ID+"/updates", "member-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list notes: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list taskhttp.ListUpdateNotesResponse
	decodeResponse(t, rr, &list)
	if len(list.Notes) != 2 || list.Notes[0].Note != "formwork set" {
		t.Fatalf("expected newest-first notes, got %+v", list.Notes)
	}

	rr = doJSON(t, server, http.MethodPost, base+"/missing/updates", "member-token", map[string]any{"note": "late"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("note on missing task: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestViewerCannotManageTasksOrStatuses(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})
	addProjectMember(t, server, projectID, "user_viewer", "viewer")

	rr := doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/tasks", "viewer-token", map[string]any{"title": "Pour foundation"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("viewer create task: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/task-statuses", "viewer-token", map[string]any{"name": "To Do"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("viewer create status: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMemberCannotManageTaskStatuses(t *testing.T) {
	server := newTestServer()
	projectID := createTestProject(t, server, map[string]any{"name": "Harbor Site"})
	addProjectMember(t, server, projectID, "user_member", "member")

	// Task writes are open to members; status board changes are not.
	rr := doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/tasks", "member-token", map[string]any{"title": "Pour foundation"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("member create task: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, server, http.MethodPost, "/api/v1/projects/"+projectID+"/task-statuses", "member-token", map[string]any{"name": "To Do"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("member create status: expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}
