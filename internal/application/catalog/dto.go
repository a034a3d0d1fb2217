package catalog

import (
	"time"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductInput holds a validated name and price for create and full update.
type ProductInput struct {
	Name           string
	SuggestedPrice decimal.Decimal
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uint64          `json:"id"`
	Name           string          `json:"name"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SuggestedPrice: p.SuggestedPrice,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
