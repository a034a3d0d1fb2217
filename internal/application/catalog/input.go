package catalog

import (
	"github.com/delivery/backend/internal/application/validation"
	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
)

const (
	fieldName  = "name"
	fieldPrice = "suggested_price"
)

// ParseProductInput validates a body carrying every product field.
func ParseProductInput(body map[string]any) (ProductInput, error) {
	if err := validation.RequireKeys(body, fieldName, fieldPrice); err != nil {
		return ProductInput{}, err
	}
	name, err := validation.Name(fieldName, body[fieldName])
	if err != nil {
		return ProductInput{}, err
	}
	price, err := validation.Price(fieldPrice, body[fieldPrice])
	if err != nil {
		return ProductInput{}, err
	}
	return ProductInput{Name: name, SuggestedPrice: price}, nil
}

// ParseProductPatch validates the product fields present in body.
func ParseProductPatch(body map[string]any) (catalog.ProductPatch, error) {
	var patch catalog.ProductPatch
	if raw, ok := body[fieldName]; ok {
		name, err := validation.Name(fieldName, raw)
		if err != nil {
			return patch, err
		}
		patch.Name = &name
	}
	if raw, ok := body[fieldPrice]; ok {
		price, err := validation.Price(fieldPrice, raw)
		if err != nil {
			return patch, err
		}
		patch.SuggestedPrice = &price
	}
	if patch.IsEmpty() {
		return patch, shared.NewValidationFailure("At least one of 'name' or 'suggested_price' must be supplied")
	}
	return patch, nil
}
