package handler

import (
	"context"
	"net/http"

	identityapp "github.com/delivery/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// MsgPermissionCreated is returned by a successful permission create.
const MsgPermissionCreated = "Permission created successfully."

// PermissionService is the permission use case surface used by PermissionHandler.
type PermissionService interface {
	Create(ctx context.Context, req identityapp.CreatePermissionRequest) (*identityapp.PermissionResponse, error)
	List(ctx context.Context, query map[string]string) ([]identityapp.PermissionResponse, error)
}

// PermissionHandler handles permission API endpoints
type PermissionHandler struct {
	BaseHandler
	permissions PermissionService
}

// NewPermissionHandler creates a new PermissionHandler
func NewPermissionHandler(permissions PermissionService) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

// Create godoc
// @ID           createPermission
// @Summary      Create a permission
// @Description  Registers a permission tag such as READ or WRITE. Requires WRITE.
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreatePermissionRequest true "Permission"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /permissions [post]
func (h *PermissionHandler) Create(c *gin.Context) {
	var req identityapp.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if _, err := h.permissions.Create(c.Request.Context(), req); err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	h.OK(c, gin.H{"message": MsgPermissionCreated})
}

// List godoc
// @ID           listPermissions
// @Summary      List permissions
// @Description  Lists permissions, optionally filtered by description. Requires READ.
// @Tags         permissions
// @Produce      json
// @Param        description query string false "Description contains"
// @Success      200 {object} PermissionListResponse
// @Success      204 "No permission matched"
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /permissions [get]
func (h *PermissionHandler) List(c *gin.Context) {
	permissions, err := h.permissions.List(c.Request.Context(), queryParams(c))
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if len(permissions) == 0 {
		h.NoContent(c)
		return
	}
	h.OK(c, PermissionListResponse{Permissions: permissions})
}
