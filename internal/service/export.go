package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/amberpalace/hotel-booking/internal/model"
)

// csvHeader lists the export columns, matching the bookings table
// layout exactly so a spreadsheet import lines up with the database.
var csvHeader = []string{
	"id", "created_at", "ref", "name", "email", "phone", "package",
	"check_in", "check_out", "nights", "guests", "addons",
	"subtotal", "tax", "total", "pay_option", "pay_status", "notes",
}

// WriteBookingsCSV streams the reservations to w as CSV with a header
// row. Pure serialization: no filtering, no recomputation, the frozen
// money fields go out exactly as stored.
func WriteBookingsCSV(w io.Writer, bookings []model.Booking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range bookings {
		b := &bookings[i]
		rec := []string{
			strconv.FormatInt(b.ID, 10),
			b.CreatedAt.Format(time.RFC3339),
			b.Ref,
			b.Name,
			b.Email,
			b.Phone,
			b.Package,
			b.CheckIn,
			b.CheckOut,
			strconv.Itoa(b.Nights),
			strconv.Itoa(b.Guests),
			strings.Join(b.AddOns, ", "),
			strconv.FormatInt(b.Subtotal, 10),
			strconv.FormatInt(b.Tax, 10),
			strconv.FormatInt(b.Total, 10),
			b.PayOption,
			b.PayStatus,
			b.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
