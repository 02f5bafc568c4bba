package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CheckInRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	SelfieRef string  `json:"selfie_ref,omitempty"`
}

type CheckOutRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	SelfieRef string  `json:"selfie_ref,omitempty"`
}

type AttendanceDTO struct {
	ID                string     `json:"id"`
	ProjectID         string     `json:"project_id"`
	UserID            string     `json:"user_id"`
	Date              string     `json:"date"`
	CheckInAt         time.Time  `json:"check_in_at"`
	CheckInLat        float64    `json:"check_in_lat"`
	CheckInLng        float64    `json:"check_in_lng"`
	CheckInSelfieRef  string     `json:"check_in_selfie_ref,omitempty"`
	CheckOutAt        *time.Time `json:"check_out_at,omitempty"`
	CheckOutLat       *float64   `json:"check_out_lat,omitempty"`
	CheckOutLng       *float64   `json:"check_out_lng,omitempty"`
	CheckOutSelfieRef string     `json:"check_out_selfie_ref,omitempty"`
}

type ListAttendanceResponse struct {
	Records []AttendanceDTO `json:"records"`
}
