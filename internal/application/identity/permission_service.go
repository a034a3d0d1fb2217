// Package identity contains the permission use cases.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/delivery/backend/internal/domain/identity"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CreatePermissionRequest is the body of a permission create request
type CreatePermissionRequest struct {
	Description string `json:"description" binding:"required,min=2,max=100"`
}

// PermissionResponse represents a permission in API responses
type PermissionResponse struct {
	ID          uint64    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// PermissionService handles permission business operations
type PermissionService struct {
	permissions identity.PermissionRepository
	logger      *zap.Logger
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(permissions identity.PermissionRepository, logger *zap.Logger) *PermissionService {
	return &PermissionService{permissions: permissions, logger: logger}
}

// Create stores a new permission tag.
func (s *PermissionService) Create(ctx context.Context, req CreatePermissionRequest) (*PermissionResponse, error) {
	permission, err := identity.NewPermission(req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.permissions.Create(ctx, permission); err != nil {
		return nil, fmt.Errorf("create permission: %w", err)
	}
	s.logger.Info("permission created", zap.String("description", permission.Description))
	return &PermissionResponse{
		ID:          permission.ID,
		Description: permission.Description,
		CreatedAt:   permission.CreatedAt,
	}, nil
}

// List returns the permissions matching the query parameters.
func (s *PermissionService) List(ctx context.Context, query map[string]string) ([]PermissionResponse, error) {
	filter, err := identity.PermissionFilter.Build(query)
	if err != nil {
		return nil, err
	}
	permissions, err := s.permissions.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return lo.Map(permissions, func(p identity.Permission, _ int) PermissionResponse {
		return PermissionResponse{ID: p.ID, Description: p.Description, CreatedAt: p.CreatedAt}
	}), nil
}
