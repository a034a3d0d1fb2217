package models

import (
	"time"

	"github.com/delivery/backend/internal/domain/logistics"
)

// DeliveryModel is the persistence model for the Delivery domain entity.
type DeliveryModel struct {
	BaseModel
	AddressID        uint64    `gorm:"not null;index"`
	SaleID           uint64    `gorm:"not null;index"`
	DeliveryForecast time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// ToDomain converts the persistence model to a domain Delivery.
func (m *DeliveryModel) ToDomain() *logistics.Delivery {
	return &logistics.Delivery{
		BaseEntity:       m.BaseModel.ToDomain(),
		AddressID:        m.AddressID,
		SaleID:           m.SaleID,
		DeliveryForecast: m.DeliveryForecast,
	}
}
