package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fieldops/contexts/field-operations/daily-report-service/domain/entities"
)

type dailyReportModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ProjectID  string    `gorm:"column:project_id;uniqueIndex:idx_daily_report_day"`
	UserID     string    `gorm:"column:user_id;uniqueIndex:idx_daily_report_day"`
	ReportDate string    `gorm:"column:report_date;uniqueIndex:idx_daily_report_day"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (dailyReportModel) TableName() string { return "daily_reports" }

func (m dailyReportModel) toEntity() entities.DailyReport {
	return entities.DailyReport{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		UserID:     m.UserID,
		ReportDate: m.ReportDate,
		CreatedAt:  m.CreatedAt,
	}
}

type reportEntryModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	ReportID  string    `gorm:"column:daily_report_id;index"`
	ProjectID string    `gorm:"column:project_id;index"`
	Type      string    `gorm:"column:type"`
	Content   string    `gorm:"column:content"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reportEntryModel) TableName() string { return "daily_report_entries" }

func (m reportEntryModel) toEntity() entities.ReportEntry {
	return entities.ReportEntry{
		ID:        m.ID,
		ReportID:  m.ReportID,
		ProjectID: m.ProjectID,
		Type:      m.Type,
		Content:   m.Content,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return Repository{DB: db} }

func (r Repository) InsertReport(ctx context.Context, report entities.DailyReport) error {
	row := dailyReportModel{
		ID:         report.ID,
		ProjectID:  report.ProjectID,
		UserID:     report.UserID,
		ReportDate: report.ReportDate,
		CreatedAt:  report.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert daily report: %w", err)
	}
	return nil
}

func (r Repository) GetReport(ctx context.Context, projectID string, userID string, date string) (entities.DailyReport, bool, error) {
	var row dailyReportModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ? AND user_id = ? AND report_date = ?", projectID, userID, date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DailyReport{}, false, nil
	}
	if err != nil {
		return entities.DailyReport{}, false, fmt.Errorf("select daily report: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) GetReportByID(ctx context.Context, reportID string) (entities.DailyReport, bool, error) {
	var row dailyReportModel
	err := r.DB.WithContext(ctx).Where("id = ?", reportID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DailyReport{}, false, nil
	}
	if err != nil {
		return entities.DailyReport{}, false, fmt.Errorf("select daily report by id: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) ListReportsByProjectDate(ctx context.Context, projectID string, date string) ([]entities.DailyReport, error) {
	var rows []dailyReportModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ? AND report_date = ?", projectID, date).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	out := make([]entities.DailyReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r Repository) ListRecentReportDates(ctx context.Context, projectID string, limit int) ([]string, error) {
	var dates []string
	err := r.DB.WithContext(ctx).
		Model(&dailyReportModel{}).
		Where("project_id = ?", projectID).
		Distinct("report_date").
		Order("report_date DESC").
		Limit(limit).
		Pluck("report_date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("list recent report dates: %w", err)
	}
	return dates, nil
}

func (r Repository) InsertEntry(ctx context.Context, entry entities.ReportEntry) error {
	row := reportEntryModel{
		ID:        entry.ID,
		ReportID:  entry.ReportID,
		ProjectID: entry.ProjectID,
		Type:      entry.Type,
		Content:   entry.Content,
		SortOrder: entry.SortOrder,
		CreatedAt: entry.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert report entry: %w", err)
	}
	return nil
}

func (r Repository) ListEntriesByReport(ctx context.Context, reportID string) ([]entities.ReportEntry, error) {
	var rows []reportEntryModel
	err := r.DB.WithContext(ctx).
		Where("daily_report_id = ?", reportID).
		Order("sort_order ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list report entries: %w", err)
	}
	out := make([]entities.ReportEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

type attributedEntryRow struct {
	ID        string    `gorm:"column:id"`
	ReportID  string    `gorm:"column:daily_report_id"`
	ProjectID string    `gorm:"column:project_id"`
	Type      string    `gorm:"column:type"`
	Content   string    `gorm:"column:content"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UserID    string    `gorm:"column:user_id"`
}

func (m attributedEntryRow) toEntity() entities.AttributedEntry {
	return entities.AttributedEntry{
		ReportEntry: entities.ReportEntry{
			ID:        m.ID,
			ReportID:  m.ReportID,
			ProjectID: m.ProjectID,
			Type:      m.Type,
			Content:   m.Content,
			SortOrder: m.SortOrder,
			CreatedAt: m.CreatedAt,
		},
		UserID: m.UserID,
	}
}

func (r Repository) ListEntriesByProjectDate(ctx context.Context, projectID string, date string) ([]entities.AttributedEntry, error) {
	var rows []attributedEntryRow
	err := r.DB.WithContext(ctx).
		Table("daily_report_entries").
		Select("daily_report_entries.*, daily_reports.user_id").
		Joins("JOIN daily_reports ON daily_reports.id = daily_report_entries.daily_report_id").
		Where("daily_report_entries.project_id = ? AND daily_reports.report_date = ?", projectID, date).
		Order("daily_report_entries.sort_order ASC, daily_report_entries.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list project report entries: %w", err)
	}
	out := make([]entities.AttributedEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
