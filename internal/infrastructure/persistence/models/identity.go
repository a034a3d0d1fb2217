package models

import "github.com/delivery/backend/internal/domain/identity"

// PermissionModel is the persistence model for the Permission domain entity.
type PermissionModel struct {
	BaseModel
	Description string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (PermissionModel) TableName() string {
	return "permissions"
}

// ToDomain converts the persistence model to a domain Permission.
func (m *PermissionModel) ToDomain() *identity.Permission {
	return &identity.Permission{
		BaseEntity:  m.BaseModel.ToDomain(),
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Permission.
func (m *PermissionModel) FromDomain(p *identity.Permission) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Description = p.Description
}
