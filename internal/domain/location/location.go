// Package location models the State > City > Address hierarchy that
// deliveries are routed to.
package location

import (
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// State is a federative unit.
type State struct {
	shared.BaseEntity
	Name     string
	Initials string
}

// City belongs to exactly one State.
type City struct {
	shared.BaseEntity
	Name    string
	StateID uint64
	State   *State
}

// BelongsTo reports whether the city is registered under stateID.
func (c *City) BelongsTo(stateID uint64) bool {
	return c.StateID == stateID
}

// Address is a delivery destination inside a City.
type Address struct {
	shared.BaseEntity
	Street     string
	Number     int
	Complement string
	PostalCode valueobject.PostalCode
	CityID     uint64
	City       *City
}

// NewAddress builds an address from already validated values.
func NewAddress(street string, number int, complement string, cep valueobject.PostalCode, cityID uint64) *Address {
	return &Address{
		Street:     street,
		Number:     number,
		Complement: complement,
		PostalCode: cep,
		CityID:     cityID,
	}
}

// AddressKey is the set of fields two addresses must share to be the same
// place. Street is compared case-insensitively.
type AddressKey struct {
	Street     string
	Number     int
	PostalCode valueobject.PostalCode
	CityID     uint64
}

// Key returns the equivalence key of a.
func (a *Address) Key() AddressKey {
	return AddressKey{
		Street:     a.Street,
		Number:     a.Number,
		PostalCode: a.PostalCode,
		CityID:     a.CityID,
	}
}

// AddressPatch holds the fields supplied to a partial update. Nil fields
// are left unchanged.
type AddressPatch struct {
	Street     *string
	Number     *int
	Complement *string
	PostalCode *valueobject.PostalCode
}

// IsEmpty reports whether no field was supplied.
func (p AddressPatch) IsEmpty() bool {
	return p.Street == nil && p.Number == nil && p.Complement == nil && p.PostalCode == nil
}

// Apply overwrites exactly the supplied fields.
func (a *Address) Apply(p AddressPatch) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.Number != nil {
		a.Number = *p.Number
	}
	if p.Complement != nil {
		a.Complement = *p.Complement
	}
	if p.PostalCode != nil {
		a.PostalCode = *p.PostalCode
	}
}

// AddressFilter lists the query keys accepted when listing addresses.
var AddressFilter = shared.FilterSpec{
	{Key: "city_id", Column: "city_id", Mode: shared.MatchEqual, Kind: shared.ValueID},
	{Key: "street", Column: "street", Mode: shared.MatchContains, Kind: shared.ValueText},
	{Key: "cep", Column: "cep", Mode: shared.MatchEqual, Kind: shared.ValueText},
}
