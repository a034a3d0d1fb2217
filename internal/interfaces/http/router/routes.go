package router

import (
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/interfaces/http/handler"
	"github.com/delivery/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the API handlers wired by the server.
type Handlers struct {
	Address    *handler.AddressHandler
	Product    *handler.ProductHandler
	Permission *handler.PermissionHandler
	Delivery   *handler.DeliveryHandler
	System     *handler.SystemHandler
}

// DomainGroups builds the location, catalog, identity and logistics
// groups, each route guarded by the permission it requires.
func DomainGroups(h Handlers, guard middleware.PermissionGuard) []*DomainGroup {
	read := guard(identity.PermissionRead)
	write := guard(identity.PermissionWrite)
	update := guard(identity.PermissionUpdate)
	remove := guard(identity.PermissionDelete)

	location := NewDomainGroup("location", "")
	location.GET("/addresses", read, h.Address.List)
	location.PATCH("/addresses/:id", update, h.Address.Update)
	location.DELETE("/addresses/:id", remove, h.Address.Delete)
	location.POST("/states/:state_id/cities/:city_id/addresses", write, h.Address.Create)

	catalog := NewDomainGroup("catalog", "/products")
	catalog.GET("", read, h.Product.List)
	catalog.POST("", write, h.Product.Create)
	catalog.PUT("/:id", update, h.Product.Replace)
	catalog.PATCH("/:id", update, h.Product.Patch)
	catalog.DELETE("/:id", remove, h.Product.Delete)

	identityGroup := NewDomainGroup("identity", "/permissions")
	identityGroup.GET("", read, h.Permission.List)
	identityGroup.POST("", write, h.Permission.Create)

	logistics := NewDomainGroup("logistics", "/deliveries")
	logistics.GET("", read, h.Delivery.List)

	system := NewDomainGroup("system", "")
	system.GET("/ping", h.System.Ping)
	system.GET("/system/info", read, h.System.GetSystemInfo)

	return []*DomainGroup{location, catalog, identityGroup, logistics, system}
}

// RegisterAll registers every domain group on the router.
func RegisterAll(r *Router, groups []*DomainGroup) {
	for _, g := range groups {
		r.Register(g)
	}
}
