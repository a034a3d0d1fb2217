// Package trade holds sales and the products sold in them.
package trade

import (
	"context"
	"time"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Sale is a purchase made by a client through a seller.
type Sale struct {
	shared.BaseEntity
	ClientID uint64
	SellerID uint64
	SaleDate time.Time
	Items    []SaleItem
}

// SaleItem is one product line of a sale.
type SaleItem struct {
	shared.BaseEntity
	SaleID    uint64
	ProductID uint64
	Amount    int
	UnitPrice decimal.Decimal
}

// SaleItemRepository reads sale lines.
type SaleItemRepository interface {
	// CountByProduct returns how many sale lines reference productID
	CountByProduct(ctx context.Context, productID uint64) (int64, error)
}
