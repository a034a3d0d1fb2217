package persistence

import (
	"context"

	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPermissionRepository implements identity.PermissionRepository using GORM
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewGormPermissionRepository creates a new GormPermissionRepository
func NewGormPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

func (r *GormPermissionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Permission, error) {
	var rows []models.PermissionModel
	if err := applyFilter(r.db.WithContext(ctx).Model(&models.PermissionModel{}), "permissions", filter).Find(&rows).Error; err != nil {
		return nil, err
	}
	permissions := make([]identity.Permission, len(rows))
	for i := range rows {
		permissions[i] = *rows[i].ToDomain()
	}
	return permissions, nil
}

func (r *GormPermissionRepository) Create(ctx context.Context, permission *identity.Permission) error {
	model := &models.PermissionModel{}
	model.FromDomain(permission)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return MapPgError(err)
	}
	permission.BaseEntity = model.BaseModel.ToDomain()
	return nil
}
