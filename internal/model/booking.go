package model

import (
	"strings"
	"time"
)

// Payment option and status values stored on a booking. The option is
// what the guest picked on the form; the status is derived from it.
const (
	PayOptionLater    = "Pay Later"
	PayOptionPaidTest = "Paid (test)"

	PayStatusLater = "Pay Later"
	PayStatusPaid  = "Paid"
)

// NormalizePay maps a raw payment option (possibly a long form label such
// as "Pay Later (reserve now)") to the stored option and status pair.
// Anything that does not start with "Pay Later" counts as paid; an empty
// option falls back to Pay Later, the form default.
func NormalizePay(option string) (payOption, payStatus string) {
	if option == "" || strings.HasPrefix(option, PayOptionLater) {
		return PayOptionLater, PayStatusLater
	}
	return PayOptionPaidTest, PayStatusPaid
}

// Booking mirrors the 'bookings' table. A booking is written exactly once
// when the reservation is confirmed and never updated afterwards; the
// money fields hold the price frozen at creation time. Stay dates are
// civil dates in "2006-01-02" form.
type Booking struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Package   string    `json:"package"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Nights    int       `json:"nights"`
	Guests    int       `json:"guests"`
	AddOns    []string  `json:"addons"`
	Subtotal  int64     `json:"subtotal"`
	Tax       int64     `json:"tax"`
	Total     int64     `json:"total"`
	PayOption string    `json:"pay_option"`
	PayStatus string    `json:"pay_status"`
	Notes     string    `json:"notes"`
}
