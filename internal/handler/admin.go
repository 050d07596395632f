package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/amberpalace/hotel-booking/internal/config"
	"github.com/amberpalace/hotel-booking/internal/service"
	"github.com/amberpalace/hotel-booking/internal/utils"
)

const csvFilename = "amber_palace_bookings.csv"

// AdminHandler serves the property staff endpoints: login against the
// shared admin secret, the full booking listing and the CSV export.
type AdminHandler struct {
	Cfg    config.Config
	Secret utils.AdminSecret
	Svc    *service.Booking
}

// NewAdminHandler constructs an AdminHandler. secret is the hashed
// admin password, computed once at startup.
func NewAdminHandler(cfg config.Config, secret utils.AdminSecret, svc *service.Booking) *AdminHandler {
	if svc == nil {
		panic("nil service passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Secret: secret, Svc: svc}
}

type loginReq struct {
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login handles POST /v1/admin/login. A correct shared secret yields a
// short-lived ADMIN access token; anything else is a uniform 401.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Password == "" || !h.Secret.Match(req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, "admin", "ADMIN", h.Cfg.AccessTTLMin)
	if err != nil {
		log.Printf("admin: sign token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// ListBookings handles GET /v1/admin/bookings and returns every
// reservation, newest first.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Svc.List(ctx)
	if err != nil {
		log.Printf("admin: list bookings failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ExportBookings handles GET /v1/admin/bookings/export and streams the
// whole ledger as a CSV attachment.
func (h *AdminHandler) ExportBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Svc.List(ctx)
	if err != nil {
		log.Printf("admin: export bookings failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not export bookings"})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+csvFilename+`"`)
	res.WriteHeader(http.StatusOK)
	return service.WriteBookingsCSV(res, items)
}
