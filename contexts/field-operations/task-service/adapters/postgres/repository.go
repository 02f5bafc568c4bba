package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fieldops/contexts/field-operations/task-service/domain/entities"
	"fieldops/contexts/field-operations/task-service/ports"
)

type taskStatusModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	ProjectID string    `gorm:"column:project_id;index"`
	Name      string    `gorm:"column:name"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (taskStatusModel) TableName() string { return "project_task_statuses" }

func (m taskStatusModel) toEntity() entities.TaskStatus {
	return entities.TaskStatus{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

type taskModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	ProjectID   string     `gorm:"column:project_id;index"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	StatusID    string     `gorm:"column:status_id"`
	AssigneeID  string     `gorm:"column:assignee_id"`
	CreatedBy   string     `gorm:"column:created_by"`
	DueAt       *time.Time `gorm:"column:due_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (taskModel) TableName() string { return "tasks" }

func (m taskModel) toEntity() entities.Task {
	return entities.Task{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		StatusID:    m.StatusID,
		AssigneeID:  m.AssigneeID,
		CreatedBy:   m.CreatedBy,
		DueAt:       m.DueAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type taskUpdateNoteModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TaskID    string    `gorm:"column:task_id;index"`
	ProjectID string    `gorm:"column:project_id;index"`
	AuthorID  string    `gorm:"column:author_id"`
	Note      string    `gorm:"column:note"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (taskUpdateNoteModel) TableName() string { return "task_updates" }

func (m taskUpdateNoteModel) toEntity() entities.TaskUpdateNote {
	return entities.TaskUpdateNote{
		ID:        m.ID,
		TaskID:    m.TaskID,
		ProjectID: m.ProjectID,
		AuthorID:  m.AuthorID,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return Repository{DB: db} }

func (r Repository) InsertStatus(ctx context.Context, status entities.TaskStatus) error {
	row := taskStatusModel{
		ID:        status.ID,
		ProjectID: status.ProjectID,
		Name:      status.Name,
		SortOrder: status.SortOrder,
		CreatedAt: status.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert task status: %w", err)
	}
	return nil
}

func (r Repository) GetStatus(ctx context.Context, projectID string, statusID string) (entities.TaskStatus, bool, error) {
	var row taskStatusModel
	err := r.DB.WithContext(ctx).
		Where("id = ? AND project_id = ?", statusID, projectID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.TaskStatus{}, false, nil
	}
	if err != nil {
		return entities.TaskStatus{}, false, fmt.Errorf("select task status: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) ListStatuses(ctx context.Context, projectID string) ([]entities.TaskStatus, error) {
	var rows []taskStatusModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list task statuses: %w", err)
	}
	out := make([]entities.TaskStatus, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r Repository) UpdateStatus(ctx context.Context, projectID string, statusID string, update ports.StatusUpdate) (entities.TaskStatus, bool, error) {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.SortOrder != nil {
		columns["sort_order"] = *update.SortOrder
	}
	if len(columns) > 0 {
		err := r.DB.WithContext(ctx).
			Model(&taskStatusModel{}).
			Where("id = ? AND project_id = ?", statusID, projectID).
			Updates(columns).Error
		if err != nil {
			return entities.TaskStatus{}, false, fmt.Errorf("update task status: %w", err)
		}
	}
	return r.GetStatus(ctx, projectID, statusID)
}

func (r Repository) DeleteStatus(ctx context.Context, projectID string, statusID string) error {
	err := r.DB.WithContext(ctx).
		Where("id = ? AND project_id = ?", statusID, projectID).
		Delete(&taskStatusModel{}).Error
	if err != nil {
		return fmt.Errorf("delete task status: %w", err)
	}
	return nil
}

func (r Repository) InsertTask(ctx context.Context, task entities.Task) error {
	row := taskModel{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		StatusID:    task.StatusID,
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
		DueAt:       task.DueAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r Repository) GetTask(ctx context.Context, projectID string, taskID string) (entities.Task, bool, error) {
	var row taskModel
	err := r.DB.WithContext(ctx).
		Where("id = ? AND project_id = ?", taskID, projectID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Task{}, false, nil
	}
	if err != nil {
		return entities.Task{}, false, fmt.Errorf("select task: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	var rows []taskModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r Repository) UpdateTask(ctx context.Context, projectID string, taskID string, update ports.TaskUpdate, updatedAt time.Time) (entities.Task, bool, error) {
	columns := map[string]any{"updated_at": updatedAt}
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.StatusID != nil {
		columns["status_id"] = *update.StatusID
	}
	if update.AssigneeID != nil {
		columns["assignee_id"] = *update.AssigneeID
	}
	if update.DueAt != nil {
		columns["due_at"] = *update.DueAt
	}
	result := r.DB.WithContext(ctx).
		Model(&taskModel{}).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Updates(columns)
	if result.Error != nil {
		return entities.Task{}, false, fmt.Errorf("update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Task{}, false, nil
	}
	return r.GetTask(ctx, projectID, taskID)
}

func (r Repository) DeleteTask(ctx context.Context, projectID string, taskID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ? AND project_id = ?", taskID, projectID).Delete(&taskUpdateNoteModel{}).Error; err != nil {
			return fmt.Errorf("delete task notes: %w", err)
		}
		if err := tx.Where("id = ? AND project_id = ?", taskID, projectID).Delete(&taskModel{}).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}

func (r Repository) InsertUpdateNote(ctx context.Context, note entities.TaskUpdateNote) error {
	row := taskUpdateNoteModel{
		ID:        note.ID,
		TaskID:    note.TaskID,
		ProjectID: note.ProjectID,
		AuthorID:  note.AuthorID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert task note: %w", err)
	}
	return nil
}

func (r Repository) ListUpdateNotes(ctx context.Context, projectID string, taskID string) ([]entities.TaskUpdateNote, error) {
	var rows []taskUpdateNoteModel
	err := r.DB.WithContext(ctx).
		Where("task_id = ? AND project_id = ?", taskID, projectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list task notes: %w", err)
	}
	out := make([]entities.TaskUpdateNote, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
