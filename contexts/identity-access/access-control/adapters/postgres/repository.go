package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldops/contexts/identity-access/access-control/domain/entities"
	domainerrors "fieldops/contexts/identity-access/access-control/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tenantMemberModel struct {
	TenantID  string    `gorm:"column:tenant_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (tenantMemberModel) TableName() string { return "tenant_members" }

// projectRefModel reads the project-service owned projects table; this
// adapter never writes it.
type projectRefModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	TenantID string `gorm:"column:tenant_id"`
}

func (projectRefModel) TableName() string { return "projects" }

type projectMemberRefModel struct {
	ProjectID string `gorm:"column:project_id;primaryKey"`
	UserID    string `gorm:"column:user_id;primaryKey"`
	Role      string `gorm:"column:role"`
}

func (projectMemberRefModel) TableName() string { return "project_members" }

// userRefModel reads the identity-provider owned users table; this adapter
// never writes it.
type userRefModel struct {
	ID    string `gorm:"column:id;primaryKey"`
	Email string `gorm:"column:email"`
}

func (userRefModel) TableName() string { return "users" }

// Repository is the Postgres adapter for the membership repository, project
// catalog, and user directory ports.
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

func (r *Repository) GetTenantMember(ctx context.Context, tenantID string, userID string) (entities.TenantMembership, bool, error) {
	var row tenantMemberModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TenantMembership{}, false, nil
		}
		return entities.TenantMembership{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) TenantHasMembers(ctx context.Context, tenantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tenantMemberModel{}).
		Where("tenant_id = ?", tenantID).
		Limit(1).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertTenantMemberIfAbsent implements the bootstrap insert-or-observe
// contract: a conflicting concurrent insert is silently ignored and the
// caller re-reads to observe the winner.
func (r *Repository) InsertTenantMemberIfAbsent(ctx context.Context, membership entities.TenantMembership) error {
	row := modelFromEntity(membership)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
}

func (r *Repository) InsertTenantMember(ctx context.Context, membership entities.TenantMembership) error {
	row := modelFromEntity(membership)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrMemberAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repository) ListTenantMembers(ctx context.Context, tenantID string) ([]entities.TenantMembership, error) {
	var rows []tenantMemberModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.TenantMembership, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *Repository) UpdateTenantMemberRole(ctx context.Context, tenantID string, userID string, role string) (entities.TenantMembership, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&tenantMemberModel{}).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Update("role", role)
	if result.Error != nil {
		return entities.TenantMembership{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.TenantMembership{}, false, nil
	}
	return r.GetTenantMember(ctx, tenantID, userID)
}

func (r *Repository) DeleteTenantMember(ctx context.Context, tenantID string, userID string) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Delete(&tenantMemberModel{}).
		Error
}

func (r *Repository) GetProjectTenant(ctx context.Context, projectID string) (string, bool, error) {
	var row projectRefModel
	err := r.db.WithContext(ctx).
		Select("id", "tenant_id").
		Where("id = ?", projectID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.TenantID, true, nil
}

func (r *Repository) GetProjectMemberRole(ctx context.Context, projectID string, userID string) (string, bool, error) {
	var row projectMemberRefModel
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Role, true, nil
}

func (r *Repository) FindUserIDByEmail(ctx context.Context, email string) (string, bool, error) {
	var row userRefModel
	err := r.db.WithContext(ctx).
		Select("id", "email").
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.ID, true, nil
}

func (m tenantMemberModel) toEntity() entities.TenantMembership {
	return entities.TenantMembership{
		TenantID:  m.TenantID,
		UserID:    m.UserID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func modelFromEntity(membership entities.TenantMembership) tenantMemberModel {
	return tenantMemberModel{
		TenantID:  membership.TenantID,
		UserID:    membership.UserID,
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
