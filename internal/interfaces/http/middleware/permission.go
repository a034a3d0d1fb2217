package middleware

import (
	"net/http"

	"github.com/delivery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	// Disabled turns every guard into a pass-through, used when JWT
	// authentication is switched off.
	Disabled bool
	Logger   *zap.Logger
}

// PermissionGuard builds per-route permission middleware.
type PermissionGuard func(permission string) gin.HandlerFunc

// NewPermissionGuard returns a guard bound to cfg.
func NewPermissionGuard(cfg PermissionConfig) PermissionGuard {
	return func(permission string) gin.HandlerFunc {
		return RequirePermissionWithConfig(permission, cfg)
	}
}

// RequirePermission creates middleware that requires a specific permission
func RequirePermission(permission string) gin.HandlerFunc {
	return RequirePermissionWithConfig(permission, PermissionConfig{})
}

// RequirePermissionWithConfig creates middleware with custom config.
// Requests without claims get 401, claims lacking permission get 403.
func RequirePermissionWithConfig(permission string, cfg PermissionConfig) gin.HandlerFunc {
	if cfg.Disabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeUnauthorized, "Authentication required", GetRequestID(c)))
			return
		}

		if !claims.HasPermission(permission) {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Permission denied",
					zap.String("subject", claims.Subject),
					zap.String("required", permission),
					zap.Strings("granted", claims.Permissions),
					zap.String("path", c.Request.URL.Path),
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden,
				"Missing required permission: "+permission,
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}
