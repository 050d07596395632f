// Package router wires handlers and middleware onto the Echo instance.
// Route groups mirror the API surface: a bare health probe, the public
// guest endpoints under /v1 and the staff endpoints under /v1/admin.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/amberpalace/hotel-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no middleware at all.
// Currently that is only the health check used by probes.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", h.Check)
}

// RegisterPublic registers the guest-facing endpoints. Submissions are
// rate limited per client; the catalog listings sit behind the response
// cache because they only change on restart.
func RegisterPublic(e *echo.Echo, b *handler.BookingHandler, cat *handler.CatalogHandler, rateLimit, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")

	g.POST("/bookings", b.Submit, rateLimit)
	g.GET("/reservations", b.Lookup)

	g.GET("/packages", cat.ListPackages, cache)
	g.GET("/addons", cat.ListAddOns, cache)
}
