package persistence

import (
	"context"

	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSaleItemRepository implements trade.SaleItemRepository using GORM
type GormSaleItemRepository struct {
	db *gorm.DB
}

// NewGormSaleItemRepository creates a new GormSaleItemRepository
func NewGormSaleItemRepository(db *gorm.DB) *GormSaleItemRepository {
	return &GormSaleItemRepository{db: db}
}

// CountByProduct counts the sale lines that sold productID
func (r *GormSaleItemRepository) CountByProduct(ctx context.Context, productID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SaleItemModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
