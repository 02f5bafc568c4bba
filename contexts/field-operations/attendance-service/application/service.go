package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fieldops/contexts/field-operations/attendance-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/attendance-service/domain/errors"
	domainservices "fieldops/contexts/field-operations/attendance-service/domain/services"
	"fieldops/contexts/field-operations/attendance-service/ports"
)

// DefaultGeofenceRadiusMeters is how far from the project coordinates a
// check-in is still accepted.
const DefaultGeofenceRadiusMeters = 500.0

type Service struct {
	Repo    ports.Repository
	Locator ports.ProjectLocator
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger

	// GeofenceDisabled turns off the distance check regardless of project
	// coordinates. RadiusMeters falls back to the default when zero.
	GeofenceDisabled bool
	RadiusMeters     float64
}

// CheckInInput carries caller position and selfie evidence.
type CheckInInput struct {
	Lat       float64
	Lng       float64
	SelfieRef string
}

// CheckIn creates today's attendance row for the caller. The date is the
// server's UTC calendar day.
func (s Service) CheckIn(ctx context.Context, projectID string, userID string, input CheckInInput) (entities.Attendance, error) {
	projectID = strings.TrimSpace(projectID)
	userID = strings.TrimSpace(userID)
	if projectID == "" || userID == "" {
		return entities.Attendance{}, domainerrors.ErrInvalidRequest
	}

	now := s.now()
	date := now.Format("2006-01-02")

	if _, exists, err := s.Repo.GetAttendance(ctx, projectID, userID, date); err != nil {
		return entities.Attendance{}, err
	} else if exists {
		return entities.Attendance{}, domainerrors.ErrAlreadyCheckedIn
	}

	if !s.GeofenceDisabled && s.Locator != nil {
		centerLat, centerLng, located, err := s.Locator.GetProjectLocation(ctx, projectID)
		if err != nil {
			return entities.Attendance{}, err
		}
		if located && !domainservices.WithinRadius(centerLat, centerLng, input.Lat, input.Lng, s.radius()) {
			return entities.Attendance{}, domainerrors.ErrOutsideGeofence
		}
	}

	attendanceID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Attendance{}, err
	}
	attendance := entities.Attendance{
		ID:               attendanceID,
		ProjectID:        projectID,
		UserID:           userID,
		Date:             date,
		CheckInAt:        now,
		CheckInLat:       input.Lat,
		CheckInLng:       input.Lng,
		CheckInSelfieRef: strings.TrimSpace(input.SelfieRef),
	}
	if err := s.Repo.InsertAttendance(ctx, attendance); err != nil {
		return entities.Attendance{}, err
	}

	ResolveLogger(s.Logger).Info("attendance check-in",
		"event", "attendance_checked_in",
		"module", "field-operations/attendance-service",
		"layer", "application",
		"project_id", projectID,
		"user_id", userID,
		"date", date,
	)
	return attendance, nil
}

// CheckOutInput carries caller position and selfie evidence.
type CheckOutInput struct {
	Lat       float64
	Lng       float64
	SelfieRef string
}

// CheckOut completes today's attendance row. It requires an existing
// check-in and rejects a second check-out.
func (s Service) CheckOut(ctx context.Context, projectID string, userID string, input CheckOutInput) (entities.Attendance, error) {
	projectID = strings.TrimSpace(projectID)
	userID = strings.TrimSpace(userID)
	if projectID == "" || userID == "" {
		return entities.Attendance{}, domainerrors.ErrInvalidRequest
	}

	now := s.now()
	date := now.Format("2006-01-02")

	attendance, exists, err := s.Repo.GetAttendance(ctx, projectID, userID, date)
	if err != nil {
		return entities.Attendance{}, err
	}
	if !exists {
		return entities.Attendance{}, domainerrors.ErrCheckInRequired
	}
	if attendance.CheckOutAt != nil {
		return entities.Attendance{}, domainerrors.ErrAlreadyCheckedOut
	}

	checkOutAt := now
	lat := input.Lat
	lng := input.Lng
	attendance.CheckOutAt = &checkOutAt
	attendance.CheckOutLat = &lat
	attendance.CheckOutLng = &lng
	attendance.CheckOutSelfieRef = strings.TrimSpace(input.SelfieRef)
	if err := s.Repo.UpdateAttendance(ctx, attendance); err != nil {
		return entities.Attendance{}, err
	}

	ResolveLogger(s.Logger).Info("attendance check-out",
		"event", "attendance_checked_out",
		"module", "field-operations/attendance-service",
		"layer", "application",
		"project_id", projectID,
		"user_id", userID,
		"date", date,
	)
	return attendance, nil
}

// ListByProjectDate returns the project's attendance rows for one calendar
// day, ordered by check-in time.
func (s Service) ListByProjectDate(ctx context.Context, projectID string, date string) ([]entities.Attendance, error) {
	projectID = strings.TrimSpace(projectID)
	date = strings.TrimSpace(date)
	if projectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	if date == "" {
		date = s.now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.ListByProjectDate(ctx, projectID, date)
}

func (s Service) radius() float64 {
	if s.RadiusMeters > 0 {
		return s.RadiusMeters
	}
	return DefaultGeofenceRadiusMeters
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
