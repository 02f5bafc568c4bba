package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/field-operations/attendance-service/application"
	"fieldops/contexts/field-operations/attendance-service/domain/entities"
	httptransport "fieldops/contexts/field-operations/attendance-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CheckInHandler(ctx context.Context, projectID string, userID string, request httptransport.CheckInRequest) (httptransport.AttendanceDTO, error) {
	attendance, err := h.Service.CheckIn(ctx, projectID, userID, application.CheckInInput{
		Lat:       request.Lat,
		Lng:       request.Lng,
		SelfieRef: request.SelfieRef,
	})
	if err != nil {
		return httptransport.AttendanceDTO{}, err
	}
	return attendanceDTO(attendance), nil
}

func (h Handler) CheckOutHandler(ctx context.Context, projectID string, userID string, request httptransport.CheckOutRequest) (httptransport.AttendanceDTO, error) {
	attendance, err := h.Service.CheckOut(ctx, projectID, userID, application.CheckOutInput{
		Lat:       request.Lat,
		Lng:       request.Lng,
		SelfieRef: request.SelfieRef,
	})
	if err != nil {
		return httptransport.AttendanceDTO{}, err
	}
	return attendanceDTO(attendance), nil
}

func (h Handler) ListByProjectDateHandler(ctx context.Context, projectID string, date string) (httptransport.ListAttendanceResponse, error) {
	records, err := h.Service.ListByProjectDate(ctx, projectID, date)
	if err != nil {
		return httptransport.ListAttendanceResponse{}, err
	}
	out := httptransport.ListAttendanceResponse{Records: make([]httptransport.AttendanceDTO, 0, len(records))}
	for _, record := range records {
		out.Records = append(out.Records, attendanceDTO(record))
	}
	return out, nil
}

func attendanceDTO(attendance entities.Attendance) httptransport.AttendanceDTO {
	return httptransport.AttendanceDTO{
		ID:                attendance.ID,
		ProjectID:         attendance.ProjectID,
		UserID:            attendance.UserID,
		Date:              attendance.Date,
		CheckInAt:         attendance.CheckInAt,
		CheckInLat:        attendance.CheckInLat,
		CheckInLng:        attendance.CheckInLng,
		CheckInSelfieRef:  attendance.CheckInSelfieRef,
		CheckOutAt:        attendance.CheckOutAt,
		CheckOutLat:       attendance.CheckOutLat,
		CheckOutLng:       attendance.CheckOutLng,
		CheckOutSelfieRef: attendance.CheckOutSelfieRef,
	}
}
