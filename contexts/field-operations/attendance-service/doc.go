// Package attendanceservice records daily check-in/check-out rows keyed by
// (project, user, date). Check-ins are geofenced against the project
// coordinates when the project has any; projects without coordinates skip
// the distance check.
package attendanceservice
