package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fieldops/contexts/field-operations/task-service/domain/entities"
	"fieldops/contexts/field-operations/task-service/ports"
)

// Store is an in-memory task repository.
type Store struct {
	mu       sync.RWMutex
	statuses map[string]entities.TaskStatus
	tasks    map[string]entities.Task
	notes    map[string]entities.TaskUpdateNote
}

func NewStore() *Store {
	return &Store{
		statuses: make(map[string]entities.TaskStatus),
		tasks:    make(map[string]entities.Task),
		notes:    make(map[string]entities.TaskUpdateNote),
	}
}

func (s *Store) InsertStatus(_ context.Context, status entities.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[status.ID] = status
	return nil
}

func (s *Store) GetStatus(_ context.Context, projectID string, statusID string) (entities.TaskStatus, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.statuses[statusID]
	if !ok || status.ProjectID != projectID {
		return entities.TaskStatus{}, false, nil
	}
	return status, true, nil
}

func (s *Store) ListStatuses(_ context.Context, projectID string) ([]entities.TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.TaskStatus
	for _, status := range s.statuses {
		if status.ProjectID == projectID {
			out = append(out, status)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder == out[j].SortOrder {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

func (s *Store) UpdateStatus(_ context.Context, projectID string, statusID string, update ports.StatusUpdate) (entities.TaskStatus, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[statusID]
	if !ok || status.ProjectID != projectID {
		return entities.TaskStatus{}, false, nil
	}
	if update.Name != nil {
		status.Name = *update.Name
	}
	if update.SortOrder != nil {
		status.SortOrder = *update.SortOrder
	}
	s.statuses[statusID] = status
	return status, true, nil
}

func (s *Store) DeleteStatus(_ context.Context, projectID string, statusID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[statusID]
	if ok && status.ProjectID == projectID {
		delete(s.statuses, statusID)
	}
	return nil
}

func (s *Store) InsertTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return nil
}

func (s *Store) GetTask(_ context.Context, projectID string, taskID string) (entities.Task, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[taskID]
	if !ok || task.ProjectID != projectID {
		return entities.Task{}, false, nil
	}
	return task, true, nil
}

func (s *Store) ListTasks(_ context.Context, projectID string) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Task
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateTask(_ context.Context, projectID string, taskID string, update ports.TaskUpdate, updatedAt time.Time) (entities.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok || task.ProjectID != projectID {
		return entities.Task{}, false, nil
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.StatusID != nil {
		task.StatusID = *update.StatusID
	}
	if update.AssigneeID != nil {
		task.AssigneeID = *update.AssigneeID
	}
	if update.DueAt != nil {
		dueAt := *update.DueAt
		task.DueAt = &dueAt
	}
	task.UpdatedAt = updatedAt
	s.tasks[taskID] = task
	return task, true, nil
}

func (s *Store) DeleteTask(_ context.Context, projectID string, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok || task.ProjectID != projectID {
		return nil
	}
	delete(s.tasks, taskID)
	for noteID, note := range s.notes {
		if note.TaskID == taskID {
			delete(s.notes, noteID)
		}
	}
	return nil
}

func (s *Store) InsertUpdateNote(_ context.Context, note entities.TaskUpdateNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ID] = note
	return nil
}

func (s *Store) ListUpdateNotes(_ context.Context, projectID string, taskID string) ([]entities.TaskUpdateNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.TaskUpdateNote
	for _, note := range s.notes {
		if note.ProjectID == projectID && note.TaskID == taskID {
			out = append(out, note)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) { return uuid.NewString(), nil }
