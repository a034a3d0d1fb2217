package persistence

import (
	"context"

	"github.com/delivery/backend/internal/domain/logistics"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements logistics.DeliveryRepository using GORM
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GormDeliveryRepository
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// FindAll returns the deliveries matching filter
func (r *GormDeliveryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]logistics.Delivery, error) {
	var rows []models.DeliveryModel
	if err := applyFilter(r.db.WithContext(ctx).Model(&models.DeliveryModel{}), "deliveries", filter).Find(&rows).Error; err != nil {
		return nil, err
	}
	deliveries := make([]logistics.Delivery, len(rows))
	for i := range rows {
		deliveries[i] = *rows[i].ToDomain()
	}
	return deliveries, nil
}

// CountByAddress counts the deliveries shipping to addressID
func (r *GormDeliveryRepository) CountByAddress(ctx context.Context, addressID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DeliveryModel{}).
		Where("address_id = ?", addressID).
		Count(&count).Error
	return count, err
}
