// Package catalog holds the products that can be sold and delivered.
package catalog

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxNameLength is the width of the name column, in characters.
const MaxNameLength = 200

// Product is a sellable item with a suggested price.
type Product struct {
	shared.BaseEntity
	Name           string
	SuggestedPrice decimal.Decimal
}

// NewProduct validates name and price and returns a new product.
func NewProduct(name string, suggestedPrice decimal.Decimal) (*Product, error) {
	p := &Product{}
	if err := p.Replace(name, suggestedPrice); err != nil {
		return nil, err
	}
	return p, nil
}

// Replace overwrites every mutable field.
func (p *Product) Replace(name string, suggestedPrice decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationFailure("The 'name' param cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return shared.NewValidationFailure("The 'name' param must be at most 200 characters")
	}
	if !suggestedPrice.IsPositive() {
		return shared.NewValidationFailure("The 'suggested_price' param must be greater than zero")
	}
	p.Name = name
	p.SuggestedPrice = suggestedPrice
	return nil
}

// ProductPatch holds the fields supplied to a partial update.
type ProductPatch struct {
	Name           *string
	SuggestedPrice *decimal.Decimal
}

// IsEmpty reports whether no field was supplied.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.SuggestedPrice == nil
}

// Apply merges patch into the product, keeping fields that were not supplied.
func (p *Product) Apply(patch ProductPatch) error {
	name, price := p.Name, p.SuggestedPrice
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.SuggestedPrice != nil {
		price = *patch.SuggestedPrice
	}
	return p.Replace(name, price)
}

// ProductFilter lists the query keys accepted when listing products.
var ProductFilter = shared.FilterSpec{
	{Key: "name", Column: "name", Mode: shared.MatchContains, Kind: shared.ValueText},
	{Key: "price_min", Column: "suggested_price", Mode: shared.MatchAtLeast, Kind: shared.ValueDecimal},
	{Key: "price_max", Column: "suggested_price", Mode: shared.MatchAtMost, Kind: shared.ValueDecimal},
}

// ProductRepository persists products.
type ProductRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	// FindByID returns shared.ErrNotFound when the product does not exist
	FindByID(ctx context.Context, id uint64) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, product *Product) error
}
