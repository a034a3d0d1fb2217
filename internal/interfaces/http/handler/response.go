package handler

import (
	catalogapp "github.com/delivery/backend/internal/application/catalog"
	identityapp "github.com/delivery/backend/internal/application/identity"
	locationapp "github.com/delivery/backend/internal/application/location"
	logisticsapp "github.com/delivery/backend/internal/application/logistics"
)

// AddressListResponse is the body of a non-empty address listing
// @Description Addresses matching the filter
type AddressListResponse struct {
	Message   string                        `json:"message" example:"Addresses found successfully!"`
	Addresses []locationapp.AddressResponse `json:"addresses"`
}

// CreateAddressResponse is the body of an address create. Message is only
// set when an equivalent address already existed.
// @Description Stored address id
type CreateAddressResponse struct {
	Message   string `json:"message,omitempty" example:"Address already exists! The address was not added."`
	AddressID uint64 `json:"address_id" example:"42"`
}

// CreateAddressRequest documents the address create body
// @Description Request body for creating an address
type CreateAddressRequest struct {
	Street     string `json:"street" example:"Rua Florianopolis"`
	Number     int    `json:"number" example:"123"`
	Complement string `json:"complement" example:"Apto 12"`
	CEP        string `json:"cep" example:"89229-780"`
}

// UpdateAddressRequest documents the partial address update body
// @Description Any subset of the address fields
type UpdateAddressRequest struct {
	Street     *string `json:"street" example:"Rua Blumenau"`
	Number     *int    `json:"number" example:"45"`
	Complement *string `json:"complement" example:""`
	CEP        *string `json:"cep" example:"89201000"`
}

// ProductListResponse is the body of a non-empty product listing
// @Description Products matching the filter
type ProductListResponse struct {
	Products []catalogapp.ProductResponse `json:"products"`
}

// CreateProductResponse is the body of a product create
// @Description Created product
type CreateProductResponse struct {
	Message string                      `json:"message" example:"Product created successfully!"`
	Product *catalogapp.ProductResponse `json:"product"`
}

// ProductRequest documents the product create and replace body
// @Description Product fields
type ProductRequest struct {
	Name           string `json:"name" example:"Notebook"`
	SuggestedPrice string `json:"suggested_price" example:"3500.00"`
}

// PermissionListResponse is the body of a non-empty permission listing
// @Description Permissions matching the filter
type PermissionListResponse struct {
	Permissions []identityapp.PermissionResponse `json:"permissions"`
}

// DeliveryListResponse is the body of a non-empty delivery listing
// @Description Deliveries matching the filter
type DeliveryListResponse struct {
	Deliveries []logisticsapp.DeliveryResponse `json:"deliveries"`
}
