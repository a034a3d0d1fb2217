package persistence

import (
	"context"

	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAddressRepository implements location.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindAll returns the addresses matching filter with their city and state
func (r *GormAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]location.Address, error) {
	var rows []models.AddressModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.AddressModel{}).Preload("City.State"), "addresses", filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	addresses := make([]location.Address, len(rows))
	for i := range rows {
		addresses[i] = *rows[i].ToDomain()
	}
	return addresses, nil
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uint64) (*location.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, MapPgError(err)
	}
	return model.ToDomain(), nil
}

// FindEquivalent finds the stored address sharing key, ignoring street case
func (r *GormAddressRepository) FindEquivalent(ctx context.Context, key location.AddressKey) (*location.Address, error) {
	var model models.AddressModel
	err := r.db.WithContext(ctx).
		Where("LOWER(street) = LOWER(?) AND number = ? AND cep = ? AND city_id = ?",
			key.Street, key.Number, key.PostalCode.String(), key.CityID).
		First(&model).Error
	if err != nil {
		return nil, MapPgError(err)
	}
	return model.ToDomain(), nil
}

// Create inserts a new address and copies the generated identity back
func (r *GormAddressRepository) Create(ctx context.Context, address *location.Address) error {
	model := models.AddressModelFromDomain(address)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return MapPgError(err)
	}
	address.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update writes every mutable column of address
func (r *GormAddressRepository) Update(ctx context.Context, address *location.Address) error {
	result := r.db.WithContext(ctx).
		Model(&models.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"street":     address.Street,
			"number":     address.Number,
			"complement": address.Complement,
			"cep":        address.PostalCode.String(),
		})
	if result.Error != nil {
		return MapPgError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes address. A delivery still referencing it yields shared.ErrConflict
func (r *GormAddressRepository) Delete(ctx context.Context, address *location.Address) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", address.ID)
	if result.Error != nil {
		return MapPgError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
