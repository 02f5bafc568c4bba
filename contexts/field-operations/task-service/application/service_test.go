package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fieldops/contexts/field-operations/task-service/adapters/memory"
	domainerrors "fieldops/contexts/field-operations/task-service/domain/errors"
	"fieldops/contexts/field-operations/task-service/ports"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("task-%03d", g.next), nil
}

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Repo:  store,
		Clock: &stepClock{current: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)},
		IDGen: &seqIDGen{},
	}
}

func TestStatusesListBySortOrder(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, status := range []CreateStatusInput{
		{Name: "Done", SortOrder: 3},
		{Name: "To Do", SortOrder: 1},
		{Name: "In Progress", SortOrder: 2},
	} {
		if _, err := service.CreateStatus(ctx, "project-1", status); err != nil {
			t.Fatalf("CreateStatus %q: %v", status.Name, err)
		}
	}

	statuses, err := service.ListStatuses(ctx, "project-1")
	if err != nil {
		t.Fatalf("ListStatuses: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if statuses[0].Name != "To Do" || statuses[2].Name != "Done" {
		t.Fatalf("unexpected ordering: %+v", statuses)
	}
}

func TestCreateStatusRequiresName(t *testing.T) {
	service := newTestService()
	_, err := service.CreateStatus(context.Background(), "project-1", CreateStatusInput{Name: "   "})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestCreateTaskValidatesStatus(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{
		Title:    "Pour foundation",
		StatusID: "missing",
	})
	if !errors.Is(err, domainerrors.ErrTaskStatusNotFound) {
		t.Fatalf("expected ErrTaskStatusNotFound, got %v", err)
	}

	status, err := service.CreateStatus(ctx, "project-1", CreateStatusInput{Name: "To Do", SortOrder: 1})
	if err != nil {
		t.Fatalf("CreateStatus: %v", err)
	}
	task, err := service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{
		Title:    "Pour foundation",
		StatusID: status.ID,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.StatusID != status.ID || task.CreatedBy != "user-1" {
		t.Fatalf("unexpected task %+v", task)
	}
}

func TestStatusOfAnotherProjectIsRejected(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	status, err := service.CreateStatus(ctx, "project-2", CreateStatusInput{Name: "To Do", SortOrder: 1})
	if err != nil {
		t.Fatalf("CreateStatus: %v", err)
	}
	_, err = service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{
		Title:    "Pour foundation",
		StatusID: status.ID,
	})
	if !errors.Is(err, domainerrors.ErrTaskStatusNotFound) {
		t.Fatalf("expected ErrTaskStatusNotFound for foreign status, got %v", err)
	}
}

func TestTasksListNewestFirst(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{Title: title}); err != nil {
			t.Fatalf("CreateTask %q: %v", title, err)
		}
	}

	tasks, err := service.ListTasks(ctx, "project-1")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "third" || tasks[2].Title != "first" {
		t.Fatalf("expected newest-first ordering, got %+v", tasks)
	}
}

func TestUpdateTaskTouchesUpdatedAt(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{Title: "Pour foundation"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	assignee := "user-2"
	updated, err := service.UpdateTask(ctx, "project-1", task.ID, ports.TaskUpdate{AssigneeID: &assignee})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.AssigneeID != "user-2" {
		t.Fatalf("assignee not updated: %+v", updated)
	}
	if !updated.UpdatedAt.After(task.UpdatedAt) {
		t.Fatalf("UpdatedAt not advanced: %v -> %v", task.UpdatedAt, updated.UpdatedAt)
	}

	_, err = service.UpdateTask(ctx, "project-1", "missing", ports.TaskUpdate{AssigneeID: &assignee})
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateNotesRequireTextAndTask(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{Title: "Pour foundation"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if _, err := service.AddUpdateNote(ctx, "project-1", task.ID, "user-1", "  "); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for empty note, got %v", err)
	}
	if _, err := service.AddUpdateNote(ctx, "project-1", "missing", "user-1", "rebar done"); !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	for _, text := range []string{"rebar done", "formwork set"} {
		if _, err := service.AddUpdateNote(ctx, "project-1", task.ID, "user-1", text); err != nil {
			t.Fatalf("AddUpdateNote %q: %v", text, err)
		}
	}
	notes, err := service.ListUpdateNotes(ctx, "project-1", task.ID)
	if err != nil {
		t.Fatalf("ListUpdateNotes: %v", err)
	}
	if len(notes) != 2 || notes[0].Note != "formwork set" {
		t.Fatalf("expected newest-first notes, got %+v", notes)
	}
}

func TestDeleteTaskRemovesNotes(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "project-1", "user-1", CreateTaskInput{Title: "Pour foundation"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := service.AddUpdateNote(ctx, "project-1", task.ID, "user-1", "rebar done"); err != nil {
		t.Fatalf("AddUpdateNote: %v", err)
	}

	if err := service.DeleteTask(ctx, "project-1", task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := service.GetTask(ctx, "project-1", task.ID); !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}
