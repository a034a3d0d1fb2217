// Package logistics tracks the deliveries of sales to addresses.
package logistics

import (
	"context"
	"time"

	"github.com/delivery/backend/internal/domain/shared"
)

// Delivery ships a sale to an address. While it exists the address cannot
// be deleted.
type Delivery struct {
	shared.BaseEntity
	AddressID        uint64
	SaleID           uint64
	DeliveryForecast time.Time
}

// DeliveryFilter lists the query keys accepted when listing deliveries.
var DeliveryFilter = shared.FilterSpec{
	{Key: "address_id", Column: "address_id", Mode: shared.MatchEqual, Kind: shared.ValueID},
	{Key: "sale_id", Column: "sale_id", Mode: shared.MatchEqual, Kind: shared.ValueID},
}

// DeliveryRepository reads deliveries.
type DeliveryRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]Delivery, error)
	// CountByAddress returns how many deliveries reference addressID
	CountByAddress(ctx context.Context, addressID uint64) (int64, error)
}
