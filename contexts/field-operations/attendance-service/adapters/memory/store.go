package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fieldops/contexts/field-operations/attendance-service/domain/entities"
)

// Store is an in-memory attendance repository.
type Store struct {
	mu   sync.RWMutex
	rows map[string]entities.Attendance // key projectID+"/"+userID+"/"+date
}

func NewStore() *Store {
	return &Store{rows: make(map[string]entities.Attendance)}
}

func rowKey(projectID, userID, date string) string {
	return projectID + "/" + userID + "/" + date
}

func (s *Store) InsertAttendance(_ context.Context, attendance entities.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[rowKey(attendance.ProjectID, attendance.UserID, attendance.Date)] = attendance
	return nil
}

func (s *Store) GetAttendance(_ context.Context, projectID string, userID string, date string) (entities.Attendance, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attendance, ok := s.rows[rowKey(projectID, userID, date)]
	if !ok {
		return entities.Attendance{}, false, nil
	}
	return attendance, true, nil
}

func (s *Store) UpdateAttendance(_ context.Context, attendance entities.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[rowKey(attendance.ProjectID, attendance.UserID, attendance.Date)] = attendance
	return nil
}

func (s *Store) ListByProjectDate(_ context.Context, projectID string, date string) ([]entities.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Attendance
	for _, attendance := range s.rows {
		if attendance.ProjectID == projectID && attendance.Date == date {
			out = append(out, attendance)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CheckInAt.Equal(out[j].CheckInAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].CheckInAt.Before(out[j].CheckInAt)
	})
	return out, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) { return uuid.NewString(), nil }
