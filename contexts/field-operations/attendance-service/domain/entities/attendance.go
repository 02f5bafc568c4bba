package entities

import "time"

// Attendance is one user's attendance row for one project day. Date is a
// calendar day in YYYY-MM-DD form; check-out fields stay nil until the user
// checks out.
type Attendance struct {
	ID                string
	ProjectID         string
	UserID            string
	Date              string
	CheckInAt         time.Time
	CheckInLat        float64
	CheckInLng        float64
	CheckInSelfieRef  string
	CheckOutAt        *time.Time
	CheckOutLat       *float64
	CheckOutLng       *float64
	CheckOutSelfieRef string
}
