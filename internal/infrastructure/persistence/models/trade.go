package models

import (
	"time"

	"github.com/delivery/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale domain entity.
type SaleModel struct {
	BaseModel
	ClientID uint64          `gorm:"not null;index"`
	SellerID uint64          `gorm:"not null;index"`
	SaleDate time.Time       `gorm:"not null"`
	Items    []SaleItemModel `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale.
func (m *SaleModel) ToDomain() *trade.Sale {
	s := &trade.Sale{
		BaseEntity: m.BaseModel.ToDomain(),
		ClientID:   m.ClientID,
		SellerID:   m.SellerID,
		SaleDate:   m.SaleDate,
		Items:      make([]trade.SaleItem, len(m.Items)),
	}
	for i := range m.Items {
		s.Items[i] = *m.Items[i].ToDomain()
	}
	return s
}

// SaleItemModel is one product line of a sale, stored in products_sales.
type SaleItemModel struct {
	BaseModel
	SaleID    uint64          `gorm:"not null;index"`
	ProductID uint64          `gorm:"not null;index"`
	Amount    int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "products_sales"
}

// ToDomain converts the persistence model to a domain SaleItem.
func (m *SaleItemModel) ToDomain() *trade.SaleItem {
	return &trade.SaleItem{
		BaseEntity: m.BaseModel.ToDomain(),
		SaleID:     m.SaleID,
		ProductID:  m.ProductID,
		Amount:     m.Amount,
		UnitPrice:  m.UnitPrice,
	}
}
