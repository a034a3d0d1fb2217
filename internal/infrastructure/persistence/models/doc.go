// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel shared by every table
//   - location.go: states, cities and addresses
//   - catalog.go: products
//   - identity.go: permissions
//   - trade.go: sales and their product lines
//   - logistics.go: deliveries
package models
