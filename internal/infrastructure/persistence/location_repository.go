package persistence

import (
	"context"

	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStateRepository implements location.StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GormStateRepository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// FindByID finds a state by its ID
func (r *GormStateRepository) FindByID(ctx context.Context, id uint64) (*location.State, error) {
	var model models.StateModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, MapPgError(err)
	}
	return model.ToDomain(), nil
}

// GormCityRepository implements location.CityRepository using GORM
type GormCityRepository struct {
	db *gorm.DB
}

// NewGormCityRepository creates a new GormCityRepository
func NewGormCityRepository(db *gorm.DB) *GormCityRepository {
	return &GormCityRepository{db: db}
}

// FindByID finds a city by its ID
func (r *GormCityRepository) FindByID(ctx context.Context, id uint64) (*location.City, error) {
	var model models.CityModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, MapPgError(err)
	}
	return model.ToDomain(), nil
}
