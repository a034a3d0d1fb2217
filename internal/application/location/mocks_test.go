package location

import (
	"context"

	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/logistics"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mocks
// ============================================================================

// MockAddressRepository is a mock implementation of location.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]location.Address, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.Address), args.Error(1)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uint64) (*location.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Address), args.Error(1)
}

func (m *MockAddressRepository) FindEquivalent(ctx context.Context, key location.AddressKey) (*location.Address, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Address), args.Error(1)
}

func (m *MockAddressRepository) Create(ctx context.Context, address *location.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *location.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, address *location.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

// MockCityRepository is a mock implementation of location.CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) FindByID(ctx context.Context, id uint64) (*location.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.City), args.Error(1)
}

// MockStateRepository is a mock implementation of location.StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) FindByID(ctx context.Context, id uint64) (*location.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.State), args.Error(1)
}

// MockDeliveryRepository is a mock implementation of logistics.DeliveryRepository
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]logistics.Delivery, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) CountByAddress(ctx context.Context, addressID uint64) (int64, error) {
	args := m.Called(ctx, addressID)
	return args.Get(0).(int64), args.Error(1)
}

type countingRecorder struct {
	created, deduplicated int
}

func (r *countingRecorder) AddressCreated(context.Context)      { r.created++ }
func (r *countingRecorder) AddressDeduplicated(context.Context) { r.deduplicated++ }
