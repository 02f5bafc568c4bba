package errors

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in for this date")
	ErrAlreadyCheckedOut  = errors.New("already checked out for this date")
	ErrCheckInRequired    = errors.New("check-in required before check-out")
	ErrOutsideGeofence    = errors.New("location is outside the project geofence")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidRequest     = errors.New("invalid attendance request")
)
