// Package logistics contains the delivery use cases.
package logistics

import (
	"context"
	"fmt"
	"time"

	"github.com/delivery/backend/internal/domain/logistics"
	"github.com/samber/lo"
)

// DeliveryResponse represents a delivery in API responses
type DeliveryResponse struct {
	ID               uint64    `json:"id"`
	AddressID        uint64    `json:"address_id"`
	SaleID           uint64    `json:"sale_id"`
	DeliveryForecast time.Time `json:"delivery_forecast"`
}

// DeliveryService lists deliveries
type DeliveryService struct {
	deliveries logistics.DeliveryRepository
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(deliveries logistics.DeliveryRepository) *DeliveryService {
	return &DeliveryService{deliveries: deliveries}
}

// List returns the deliveries matching the query parameters.
func (s *DeliveryService) List(ctx context.Context, query map[string]string) ([]DeliveryResponse, error) {
	filter, err := logistics.DeliveryFilter.Build(query)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.deliveries.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return lo.Map(deliveries, func(d logistics.Delivery, _ int) DeliveryResponse {
		return DeliveryResponse{
			ID:               d.ID,
			AddressID:        d.AddressID,
			SaleID:           d.SaleID,
			DeliveryForecast: d.DeliveryForecast,
		}
	}), nil
}
