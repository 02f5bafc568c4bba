package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldops/contexts/field-operations/project-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/project-service/domain/errors"
	"fieldops/contexts/field-operations/project-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type projectModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	TenantID           string    `gorm:"column:tenant_id"`
	Name               string    `gorm:"column:name"`
	Timezone           string    `gorm:"column:timezone"`
	Lat                *float64  `gorm:"column:lat"`
	Lng                *float64  `gorm:"column:lng"`
	Location           string    `gorm:"column:location"`
	Address            string    `gorm:"column:address"`
	ProjectAdminUserID string    `gorm:"column:project_admin_user_id"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

type projectMemberModel struct {
	ProjectID string    `gorm:"column:project_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (projectMemberModel) TableName() string { return "project_members" }

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateProject(ctx context.Context, project entities.Project) error {
	row := projectModelFromEntity(project)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetProject(ctx context.Context, projectID string, tenantID string) (entities.Project, bool, error) {
	var row projectModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", projectID, tenantID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Project{}, false, nil
		}
		return entities.Project{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListProjectsForTenant(ctx context.Context, tenantID string) ([]entities.Project, error) {
	var rows []projectModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return projectsFromModels(rows), nil
}

func (r *Repository) ListProjectsForUser(ctx context.Context, tenantID string, userID string) ([]entities.Project, error) {
	var rows []projectModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN (?)",
			tenantID,
			r.db.Model(&projectMemberModel{}).Select("project_id").Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return projectsFromModels(rows), nil
}

func (r *Repository) UpdateProject(ctx context.Context, projectID string, tenantID string, update ports.ProjectUpdate, updatedAt time.Time) (entities.Project, bool, error) {
	changes := map[string]any{"updated_at": updatedAt}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Timezone != nil {
		changes["timezone"] = *update.Timezone
	}
	if update.Lat != nil {
		changes["lat"] = *update.Lat
	}
	if update.Lng != nil {
		changes["lng"] = *update.Lng
	}
	if update.Location != nil {
		changes["location"] = *update.Location
	}
	if update.Address != nil {
		changes["address"] = *update.Address
	}
	if update.ProjectAdminUserID != nil {
		changes["project_admin_user_id"] = *update.ProjectAdminUserID
	}

	result := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("id = ? AND tenant_id = ?", projectID, tenantID).
		Updates(changes)
	if result.Error != nil {
		return entities.Project{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Project{}, false, nil
	}
	return r.GetProject(ctx, projectID, tenantID)
}

func (r *Repository) DeleteProject(ctx context.Context, projectID string, tenantID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", projectID, tenantID).
		Delete(&projectModel{}).
		Error
}

func (r *Repository) AddProjectMember(ctx context.Context, membership entities.ProjectMembership) error {
	row := projectMemberModel{
		ProjectID: membership.ProjectID,
		UserID:    membership.UserID,
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrMemberAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repository) ListProjectMembers(ctx context.Context, projectID string) ([]entities.ProjectMembership, error) {
	var rows []projectMemberModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProjectMembership, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ProjectMembership{
			ProjectID: row.ProjectID,
			UserID:    row.UserID,
			Role:      row.Role,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *Repository) UpdateProjectMemberRole(ctx context.Context, projectID string, userID string, role string) (entities.ProjectMembership, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&projectMemberModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role)
	if result.Error != nil {
		return entities.ProjectMembership{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ProjectMembership{}, false, nil
	}
	var row projectMemberModel
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&row).
		Error
	if err != nil {
		return entities.ProjectMembership{}, false, err
	}
	return entities.ProjectMembership{
		ProjectID: row.ProjectID,
		UserID:    row.UserID,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

func (r *Repository) RemoveProjectMember(ctx context.Context, projectID string, userID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&projectMemberModel{}).
		Error
}

// GetProjectLocation satisfies the attendance project locator port.
func (r *Repository) GetProjectLocation(ctx context.Context, projectID string) (float64, float64, bool, error) {
	var row projectModel
	err := r.db.WithContext(ctx).
		Select("id", "lat", "lng").
		Where("id = ?", projectID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}
	if row.Lat == nil || row.Lng == nil {
		return 0, 0, false, nil
	}
	return *row.Lat, *row.Lng, true, nil
}

func (m projectModel) toEntity() entities.Project {
	return entities.Project{
		ID:                 m.ID,
		TenantID:           m.TenantID,
		Name:               m.Name,
		Timezone:           m.Timezone,
		Lat:                m.Lat,
		Lng:                m.Lng,
		Location:           m.Location,
		Address:            m.Address,
		ProjectAdminUserID: m.ProjectAdminUserID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func projectModelFromEntity(project entities.Project) projectModel {
	return projectModel{
		ID:                 project.ID,
		TenantID:           project.TenantID,
		Name:               project.Name,
		Timezone:           project.Timezone,
		Lat:                project.Lat,
		Lng:                project.Lng,
		Location:           project.Location,
		Address:            project.Address,
		ProjectAdminUserID: project.ProjectAdminUserID,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
	}
}

func projectsFromModels(rows []projectModel) []entities.Project {
	out := make([]entities.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
