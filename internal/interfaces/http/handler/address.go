package handler

import (
	"context"
	"net/http"

	locationapp "github.com/delivery/backend/internal/application/location"
	"github.com/delivery/backend/internal/application/validation"
	"github.com/delivery/backend/internal/domain/location"
	"github.com/gin-gonic/gin"
)

// Response messages of the address endpoints.
const (
	MsgAddressesFound   = "Addresses found successfully!"
	MsgAddressUpdated   = "Address updated successfully!"
	MsgAddressDuplicate = "Address already exists! The address was not added."
)

// AddressService is the address use case surface used by AddressHandler.
type AddressService interface {
	List(ctx context.Context, query map[string]string) ([]locationapp.AddressResponse, error)
	Create(ctx context.Context, cmd locationapp.CreateAddressCommand) (locationapp.CreateAddressResult, error)
	Update(ctx context.Context, id uint64, patch location.AddressPatch) error
	Delete(ctx context.Context, id uint64) error
}

// AddressHandler handles address API endpoints
type AddressHandler struct {
	BaseHandler
	addresses AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addresses AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

// List godoc
// @ID           listAddresses
// @Summary      List addresses
// @Description  Lists addresses filtered by city, street substring or exact cep. Requires READ.
// @Tags         addresses
// @Produce      json
// @Param        city_id query int false "City ID"
// @Param        street query string false "Street contains"
// @Param        cep query string false "Exact 8 digit cep"
// @Success      200 {object} AddressListResponse
// @Success      204 "No address matched"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.addresses.List(c.Request.Context(), queryParams(c))
	if err != nil {
		h.Fail(c, err, http.StatusForbidden)
		return
	}
	if len(addresses) == 0 {
		h.NoContent(c)
		return
	}
	h.OK(c, AddressListResponse{Message: MsgAddressesFound, Addresses: addresses})
}

// Create godoc
// @ID           createAddress
// @Summary      Create an address
// @Description  Creates an address under a state and city. An equivalent existing address is returned with 200 instead of inserting a duplicate. Requires WRITE.
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        state_id path int true "State ID"
// @Param        city_id path int true "City ID"
// @Param        request body CreateAddressRequest true "Address"
// @Success      201 {object} CreateAddressResponse
// @Success      200 {object} CreateAddressResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /states/{state_id}/cities/{city_id}/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	cmd, err := locationapp.ParseCreateAddress(c.Param("state_id"), c.Param("city_id"), body)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}

	result, err := h.addresses.Create(c.Request.Context(), cmd)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if result.Duplicate {
		h.OK(c, CreateAddressResponse{Message: MsgAddressDuplicate, AddressID: result.AddressID})
		return
	}
	h.Created(c, CreateAddressResponse{AddressID: result.AddressID})
}

// Update godoc
// @ID           updateAddress
// @Summary      Partially update an address
// @Description  Overwrites only the supplied fields; at least one is required. Requires UPDATE.
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id path int true "Address ID"
// @Param        request body UpdateAddressRequest true "Fields to change"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /addresses/{id} [patch]
func (h *AddressHandler) Update(c *gin.Context) {
	id, err := validation.NumericID("address", c.Param("id"))
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	body, err := decodeBody(c)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	patch, err := locationapp.ParseAddressPatch(body)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}

	if err := h.addresses.Update(c.Request.Context(), id, patch); err != nil {
		h.Fail(c, err, http.StatusForbidden)
		return
	}
	h.OK(c, gin.H{"message": MsgAddressUpdated})
}

// Delete godoc
// @ID           deleteAddress
// @Summary      Delete an address
// @Description  Deletes an address no delivery references. Requires DELETE.
// @Tags         addresses
// @Param        id path int true "Address ID"
// @Success      204 "Deleted"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, err := validation.NumericID("address", c.Param("id"))
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if err := h.addresses.Delete(c.Request.Context(), id); err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	h.NoContent(c)
}
