package ports

import (
	"context"
	"time"

	"fieldops/contexts/field-operations/attendance-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ProjectLocator resolves project coordinates. ok=false means the project
// has no configured location and the geofence is skipped.
type ProjectLocator interface {
	GetProjectLocation(ctx context.Context, projectID string) (lat float64, lng float64, ok bool, err error)
}

// Repository is the persistence boundary for attendance rows. Get is keyed
// by (project, user, date); ListByProjectDate returns rows ordered by
// check-in time ascending.
type Repository interface {
	InsertAttendance(ctx context.Context, attendance entities.Attendance) error
	GetAttendance(ctx context.Context, projectID string, userID string, date string) (entities.Attendance, bool, error)
	UpdateAttendance(ctx context.Context, attendance entities.Attendance) error
	ListByProjectDate(ctx context.Context, projectID string, date string) ([]entities.Attendance, error)
}
