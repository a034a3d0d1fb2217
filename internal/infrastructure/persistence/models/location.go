package models

import (
	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// StateModel is the persistence model for the State domain entity.
type StateModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null"`
	Initials string `gorm:"type:varchar(2);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (StateModel) TableName() string {
	return "states"
}

// ToDomain converts the persistence model to a domain State.
func (m *StateModel) ToDomain() *location.State {
	return &location.State{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Initials:   m.Initials,
	}
}

// FromDomain populates the persistence model from a domain State.
func (m *StateModel) FromDomain(s *location.State) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Initials = s.Initials
}

// CityModel is the persistence model for the City domain entity.
type CityModel struct {
	BaseModel
	Name    string      `gorm:"type:varchar(150);not null"`
	StateID uint64      `gorm:"not null;index"`
	State   *StateModel `gorm:"foreignKey:StateID"`
}

// TableName returns the table name for GORM
func (CityModel) TableName() string {
	return "cities"
}

// ToDomain converts the persistence model to a domain City. A preloaded
// state is converted too.
func (m *CityModel) ToDomain() *location.City {
	c := &location.City{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		StateID:    m.StateID,
	}
	if m.State != nil {
		c.State = m.State.ToDomain()
	}
	return c
}

// FromDomain populates the persistence model from a domain City.
func (m *CityModel) FromDomain(c *location.City) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.StateID = c.StateID
}

// AddressModel is the persistence model for the Address domain entity.
// Equivalent addresses are rejected by idx_addresses_equivalent, created
// by migration on lower(street).
type AddressModel struct {
	BaseModel
	Street     string     `gorm:"type:varchar(255);not null"`
	Number     int        `gorm:"not null"`
	Complement string     `gorm:"type:varchar(255);not null;default:''"`
	CEP        string     `gorm:"column:cep;type:char(8);not null;index"`
	CityID     uint64     `gorm:"not null;index"`
	City       *CityModel `gorm:"foreignKey:CityID"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address.
func (m *AddressModel) ToDomain() *location.Address {
	a := &location.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		Street:     m.Street,
		Number:     m.Number,
		Complement: m.Complement,
		PostalCode: valueobject.PostalCode(m.CEP),
		CityID:     m.CityID,
	}
	if m.City != nil {
		a.City = m.City.ToDomain()
	}
	return a
}

// FromDomain populates the persistence model from a domain Address.
func (m *AddressModel) FromDomain(a *location.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Street = a.Street
	m.Number = a.Number
	m.Complement = a.Complement
	m.CEP = a.PostalCode.String()
	m.CityID = a.CityID
}

// AddressModelFromDomain creates a new persistence model from a domain Address.
func AddressModelFromDomain(a *location.Address) *AddressModel {
	m := &AddressModel{}
	m.FromDomain(a)
	return m
}
