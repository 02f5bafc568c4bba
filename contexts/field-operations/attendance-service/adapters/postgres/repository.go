package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fieldops/contexts/field-operations/attendance-service/domain/entities"
)

type attendanceModel struct {
	ID                string     `gorm:"column:id;primaryKey"`
	ProjectID         string     `gorm:"column:project_id;uniqueIndex:idx_attendance_day"`
	UserID            string     `gorm:"column:user_id;uniqueIndex:idx_attendance_day"`
	Date              string     `gorm:"column:date;uniqueIndex:idx_attendance_day"`
	CheckInAt         time.Time  `gorm:"column:check_in_at"`
	CheckInLat        float64    `gorm:"column:check_in_lat"`
	CheckInLng        float64    `gorm:"column:check_in_lng"`
	CheckInSelfieRef  string     `gorm:"column:check_in_selfie_ref"`
	CheckOutAt        *time.Time `gorm:"column:check_out_at"`
	CheckOutLat       *float64   `gorm:"column:check_out_lat"`
	CheckOutLng       *float64   `gorm:"column:check_out_lng"`
	CheckOutSelfieRef string     `gorm:"column:check_out_selfie_ref"`
}

func (attendanceModel) TableName() string { return "attendance_records" }

func (m attendanceModel) toEntity() entities.Attendance {
	return entities.Attendance{
		ID:                m.ID,
		ProjectID:         m.ProjectID,
		UserID:            m.UserID,
		Date:              m.Date,
		CheckInAt:         m.CheckInAt,
		CheckInLat:        m.CheckInLat,
		CheckInLng:        m.CheckInLng,
		CheckInSelfieRef:  m.CheckInSelfieRef,
		CheckOutAt:        m.CheckOutAt,
		CheckOutLat:       m.CheckOutLat,
		CheckOutLng:       m.CheckOutLng,
		CheckOutSelfieRef: m.CheckOutSelfieRef,
	}
}

func modelFromEntity(attendance entities.Attendance) attendanceModel {
	return attendanceModel{
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

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return Repository{DB: db} }

func (r Repository) InsertAttendance(ctx context.Context, attendance entities.Attendance) error {
	row := modelFromEntity(attendance)
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

func (r Repository) GetAttendance(ctx context.Context, projectID string, userID string, date string) (entities.Attendance, bool, error) {
	var row attendanceModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ? AND user_id = ? AND date = ?", projectID, userID, date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Attendance{}, false, nil
	}
	if err != nil {
		return entities.Attendance{}, false, fmt.Errorf("select attendance: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) UpdateAttendance(ctx context.Context, attendance entities.Attendance) error {
	row := modelFromEntity(attendance)
	err := r.DB.WithContext(ctx).
		Model(&attendanceModel{}).
		Where("id = ?", attendance.ID).
		Updates(map[string]any{
			"check_out_at":         row.CheckOutAt,
			"check_out_lat":        row.CheckOutLat,
			"check_out_lng":        row.CheckOutLng,
			"check_out_selfie_ref": row.CheckOutSelfieRef,
		}).Error
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

func (r Repository) ListByProjectDate(ctx context.Context, projectID string, date string) ([]entities.Attendance, error) {
	var rows []attendanceModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ? AND date = ?", projectID, date).
		Order("check_in_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	out := make([]entities.Attendance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
