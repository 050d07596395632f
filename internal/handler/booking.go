// Package handler exposes the booking core over HTTP. Handlers bind
// JSON, delegate to the service layer and translate its typed errors
// into statuses; no business rules live here.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/amberpalace/hotel-booking/internal/pricing"
	"github.com/amberpalace/hotel-booking/internal/repository"
	"github.com/amberpalace/hotel-booking/internal/service"
)

// Outcome labels returned to the caller.
const (
	statusConfirmed    = "Confirmed"
	statusRejected     = "Rejected"
	statusFailed       = "Failed"
	statusFound        = "Found"
	statusNotFound     = "NotFound"
	statusInvalidInput = "InvalidInput"
)

// dbTimeout bounds each request's storage work.
const dbTimeout = 5 * time.Second

// BookingHandler serves the guest-facing booking endpoints.
type BookingHandler struct {
	Svc *service.Booking
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.Booking) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc}
}

type submitReq struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Package    string   `json:"package"`
	CheckIn    string   `json:"check_in"`
	CheckOut   string   `json:"check_out"`
	Guests     int      `json:"guests"`
	AddOns     []string `json:"addons"`
	PayOption  string   `json:"pay_option"`
	Notes      string   `json:"notes"`
	AgreeTerms bool     `json:"agree_terms"`
}

// Submit handles POST /v1/bookings. A valid submission returns 201 with
// the confirmed reservation; validation problems return 400 with every
// message at once; storage trouble returns 500 with a generic body
// while the cause goes to the log.
func (h *BookingHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	b, err := h.Svc.Submit(ctx, service.SubmitInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Package:    req.Package,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		AddOns:     req.AddOns,
		PayOption:  req.PayOption,
		Notes:      req.Notes,
		AgreeTerms: req.AgreeTerms,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"status": statusRejected,
				"errors": verr.Messages,
			})
		}
		if errors.Is(err, pricing.ErrUnknownPackage) || errors.Is(err, pricing.ErrUnknownAddon) {
			// form and catalog are out of sync; reject loudly
			return c.JSON(http.StatusBadRequest, echo.Map{
				"status": statusRejected,
				"errors": []string{err.Error()},
			})
		}
		log.Printf("bookings: submit failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status": statusFailed,
			"error":  "could not save your booking",
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status":      statusConfirmed,
		"reservation": b,
	})
}

// Lookup handles GET /v1/reservations?email=&ref=. It returns the most
// recent reservation for the address, narrowed to an exact reference
// when ref is present.
func (h *BookingHandler) Lookup(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	b, err := h.Svc.Lookup(ctx, c.QueryParam("email"), c.QueryParam("ref"))
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"status": statusInvalidInput,
				"errors": verr.Messages,
			})
		}
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"status": statusNotFound,
				"error":  "no reservation found",
			})
		}
		log.Printf("bookings: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":      statusFound,
		"reservation": b,
	})
}
