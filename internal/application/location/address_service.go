// Package location contains the address use cases.
package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/logistics"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Messages returned by the address use cases.
const (
	MsgStateNotFound  = "Couldn't find any state with the given 'state_id'"
	MsgCityNotFound   = "Couldn't find any city with the given 'city_id'"
	MsgCityMismatch   = "The 'city_id' returned a city that doesn't match with the given 'state_id'"
	MsgAddressMissing = "Address not found"
	MsgAddressInUse   = "Address is in use and cannot be deleted."
)

// Recorder receives address creation outcomes. The telemetry package
// provides an OTel backed implementation.
type Recorder interface {
	AddressCreated(ctx context.Context)
	AddressDeduplicated(ctx context.Context)
}

type nopRecorder struct{}

func (nopRecorder) AddressCreated(context.Context)      {}
func (nopRecorder) AddressDeduplicated(context.Context) {}

// AddressServiceOption configures an AddressService.
type AddressServiceOption func(*AddressService)

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) AddressServiceOption {
	return func(s *AddressService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// AddressService handles address business operations
type AddressService struct {
	addresses  location.AddressRepository
	cities     location.CityRepository
	states     location.StateRepository
	deliveries logistics.DeliveryRepository
	logger     *zap.Logger
	recorder   Recorder
}

// NewAddressService creates a new AddressService
func NewAddressService(
	addresses location.AddressRepository,
	cities location.CityRepository,
	states location.StateRepository,
	deliveries logistics.DeliveryRepository,
	logger *zap.Logger,
	opts ...AddressServiceOption,
) *AddressService {
	s := &AddressService{
		addresses:  addresses,
		cities:     cities,
		states:     states,
		deliveries: deliveries,
		logger:     logger,
		recorder:   nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the addresses matching the query parameters.
func (s *AddressService) List(ctx context.Context, query map[string]string) ([]AddressResponse, error) {
	filter, err := location.AddressFilter.Build(query)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addresses.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return lo.Map(addresses, func(a location.Address, _ int) AddressResponse {
		return ToAddressResponse(&a)
	}), nil
}

// Create stores a new address under the given state and city. When an
// equivalent address already exists its id is returned with Duplicate set.
func (s *AddressService) Create(ctx context.Context, cmd CreateAddressCommand) (CreateAddressResult, error) {
	if err := s.checkHierarchy(ctx, cmd.StateID, cmd.CityID); err != nil {
		return CreateAddressResult{}, err
	}

	address := location.NewAddress(cmd.Street, cmd.Number, cmd.Complement, cmd.PostalCode, cmd.CityID)
	key := address.Key()

	existing, err := s.addresses.FindEquivalent(ctx, key)
	switch {
	case err == nil:
		return s.duplicate(ctx, existing), nil
	case !errors.Is(err, shared.ErrNotFound):
		return CreateAddressResult{}, fmt.Errorf("find equivalent address: %w", err)
	}

	if err := s.addresses.Create(ctx, address); err != nil {
		if !errors.Is(err, shared.ErrAlreadyExists) {
			return CreateAddressResult{}, fmt.Errorf("create address: %w", err)
		}
		// Lost an insert race against an identical request.
		existing, findErr := s.addresses.FindEquivalent(ctx, key)
		if findErr != nil {
			return CreateAddressResult{}, fmt.Errorf("reload duplicate address: %w", findErr)
		}
		return s.duplicate(ctx, existing), nil
	}

	s.recorder.AddressCreated(ctx)
	s.logger.Info("address created",
		zap.Uint64("address_id", address.ID),
		zap.Uint64("city_id", address.CityID),
	)
	return CreateAddressResult{AddressID: address.ID}, nil
}

func (s *AddressService) duplicate(ctx context.Context, existing *location.Address) CreateAddressResult {
	s.recorder.AddressDeduplicated(ctx)
	s.logger.Debug("address already exists", zap.Uint64("address_id", existing.ID))
	return CreateAddressResult{AddressID: existing.ID, Duplicate: true}
}

func (s *AddressService) checkHierarchy(ctx context.Context, stateID, cityID uint64) error {
	if _, err := s.states.FindByID(ctx, stateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundFailure(MsgStateNotFound)
		}
		return fmt.Errorf("find state: %w", err)
	}

	city, err := s.cities.FindByID(ctx, cityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundFailure(MsgCityNotFound)
		}
		return fmt.Errorf("find city: %w", err)
	}
	if !city.BelongsTo(stateID) {
		return shared.NewValidationFailure(MsgCityMismatch)
	}
	return nil
}

// Update applies a partial update to the address.
func (s *AddressService) Update(ctx context.Context, id uint64, patch location.AddressPatch) error {
	address, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	address.Apply(patch)
	if err := s.addresses.Update(ctx, address); err != nil {
		switch {
		case errors.Is(err, shared.ErrAlreadyExists):
			return shared.NewConflictFailure("An equivalent address already exists")
		case errors.Is(err, shared.ErrNotFound):
			// deleted between the lookup and the write
			return shared.NewNotFoundFailure(MsgAddressMissing)
		}
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

// Delete removes an address that no delivery references.
func (s *AddressService) Delete(ctx context.Context, id uint64) error {
	address, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.deliveries.CountByAddress(ctx, id)
	if err != nil {
		return fmt.Errorf("count deliveries: %w", err)
	}
	if inUse > 0 {
		return shared.NewConflictFailure(MsgAddressInUse).With("address_id", id)
	}

	if err := s.addresses.Delete(ctx, address); err != nil {
		if errors.Is(err, shared.ErrConflict) {
			return shared.NewConflictFailure(MsgAddressInUse).With("address_id", id)
		}
		return fmt.Errorf("delete address: %w", err)
	}
	s.logger.Info("address deleted", zap.Uint64("address_id", id))
	return nil
}

func (s *AddressService) find(ctx context.Context, id uint64) (*location.Address, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundFailure(MsgAddressMissing)
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return address, nil
}
