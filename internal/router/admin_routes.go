package router

import (
	"github.com/labstack/echo/v4"

	"github.com/amberpalace/hotel-booking/internal/handler"
	"github.com/amberpalace/hotel-booking/internal/middleware"
)

// RegisterAdmin registers the staff endpoints. Login is public but rate
// limited so the shared secret cannot be brute forced cheaply; the rest
// of the group requires a valid ADMIN token.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string, rateLimit echo.MiddlewareFunc) {
	e.POST("/v1/admin/login", a.Login, rateLimit)

	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/bookings", a.ListBookings)
	g.GET("/bookings/export", a.ExportBookings)
}
