// Package queue carries booking lifecycle events over RabbitMQ. The
// publisher side is wired into the booking service; the consumer side
// runs on its own goroutine and appends confirmations to a log file.
// Both are optional: without a broker URL the rest of the server is
// unaffected.
package queue

import (
	"time"

	"github.com/amberpalace/hotel-booking/internal/model"
)

// BookingConfirmedQueue is the durable queue confirmations travel on.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published after a reservation is persisted.
// It carries enough for downstream consumers to log or notify without
// querying the bookings database.
type BookingConfirmedEvent struct {
	Ref         string `json:"ref"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Package     string `json:"package"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Nights      int    `json:"nights"`
	Guests      int    `json:"guests"`
	Total       int64  `json:"total"`
	ConfirmedAt string `json:"confirmed_at"`
}

// NewBookingConfirmedEvent snapshots the persisted booking into an
// event payload.
func NewBookingConfirmedEvent(b *model.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		Ref:         b.Ref,
		Name:        b.Name,
		Email:       b.Email,
		Package:     b.Package,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Nights:      b.Nights,
		Guests:      b.Guests,
		Total:       b.Total,
		ConfirmedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
