package location

import (
	"time"

	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// CreateAddressCommand carries validated values for a new address.
type CreateAddressCommand struct {
	StateID    uint64
	CityID     uint64
	Street     string
	Number     int
	Complement string
	PostalCode valueobject.PostalCode
}

// CreateAddressResult reports the stored address id. Duplicate is true when
// an equivalent address already existed and nothing was inserted.
type CreateAddressResult struct {
	AddressID uint64
	Duplicate bool
}

// StateResponse represents a state nested in address responses
type StateResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// CityResponse represents a city nested in address responses
type CityResponse struct {
	ID    uint64         `json:"id"`
	Name  string         `json:"name"`
	State *StateResponse `json:"state,omitempty"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID         uint64        `json:"id"`
	Street     string        `json:"street"`
	Number     int           `json:"number"`
	Complement string        `json:"complement"`
	CEP        string        `json:"cep"`
	CityID     uint64        `json:"city_id"`
	City       *CityResponse `json:"city,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// ToAddressResponse converts a domain address, including any loaded city
// and state.
func ToAddressResponse(a *location.Address) AddressResponse {
	resp := AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		CEP:        a.PostalCode.String(),
		CityID:     a.CityID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if a.City != nil {
		resp.City = &CityResponse{ID: a.City.ID, Name: a.City.Name}
		if s := a.City.State; s != nil {
			resp.City.State = &StateResponse{ID: s.ID, Name: s.Name, Initials: s.Initials}
		}
	}
	return resp
}
