package location

import (
	"context"

	"github.com/delivery/backend/internal/domain/shared"
)

// StateRepository reads states.
type StateRepository interface {
	// FindByID returns shared.ErrNotFound when the state does not exist
	FindByID(ctx context.Context, id uint64) (*State, error)
}

// CityRepository reads cities.
type CityRepository interface {
	// FindByID returns shared.ErrNotFound when the city does not exist
	FindByID(ctx context.Context, id uint64) (*City, error)
}

// AddressRepository persists addresses.
type AddressRepository interface {
	// FindAll returns the addresses matching filter with City and State loaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Address, error)

	// FindByID returns shared.ErrNotFound when the address does not exist
	FindByID(ctx context.Context, id uint64) (*Address, error)

	// FindEquivalent returns the address sharing key, or shared.ErrNotFound
	FindEquivalent(ctx context.Context, key AddressKey) (*Address, error)

	// Create inserts address and sets its ID. It returns
	// shared.ErrAlreadyExists when an equivalent address is already stored.
	Create(ctx context.Context, address *Address) error

	Update(ctx context.Context, address *Address) error
	Delete(ctx context.Context, address *Address) error
}
