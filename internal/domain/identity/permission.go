// Package identity holds the permission tags carried by access tokens.
package identity

import (
	"context"
	"strings"

	"github.com/delivery/backend/internal/domain/shared"
)

// Permission tags guarding the HTTP API.
const (
	PermissionRead   = "READ"
	PermissionWrite  = "WRITE"
	PermissionUpdate = "UPDATE"
	PermissionDelete = "DELETE"
)

// Permission is a free text capability tag such as "READ".
type Permission struct {
	shared.BaseEntity
	Description string
}

// NewPermission trims description and rejects empty values.
func NewPermission(description string) (*Permission, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewValidationFailure("The 'description' param cannot be empty")
	}
	return &Permission{Description: description}, nil
}

// PermissionFilter lists the query keys accepted when listing permissions.
var PermissionFilter = shared.FilterSpec{
	{Key: "description", Column: "description", Mode: shared.MatchContains, Kind: shared.ValueText},
}

// PermissionRepository persists permissions.
type PermissionRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]Permission, error)
	Create(ctx context.Context, permission *Permission) error
}
