package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"

	"github.com/amberpalace/hotel-booking/internal/model"
)

// BookingRepo provides persistence for confirmed bookings. A booking is
// inserted exactly once and never updated. Stay dates are stored as
// "2006-01-02" text and created_at as RFC3339 text so the same schema
// and queries work on both MySQL and SQLite.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, created_at, ref, name, email, phone, package, check_in, check_out, nights, guests, addons, subtotal, tax, total, pay_option, pay_status, notes`

// Create inserts a booking and fills in its storage-assigned ID. A
// collision on the unique ref index is reported as ErrDuplicateRef so
// the caller can retry with a fresh reference; the insert itself is the
// atomicity guarantee, there is no check-then-insert window.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(created_at, ref, name, email, phone, package, check_in, check_out, nights, guests, addons, subtotal, tax, total, pay_option, pay_status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.CreatedAt.Format(time.RFC3339), b.Ref, b.Name, b.Email, b.Phone, b.Package,
		b.CheckIn, b.CheckOut, b.Nights, b.Guests, joinAddOns(b.AddOns),
		b.Subtotal, b.Tax, b.Total, b.PayOption, b.PayStatus, b.Notes,
	)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateRef
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// FindByEmail returns the most recently created booking for the address.
// A non-empty ref narrows the match to that exact reference. Misses are
// reported as ErrNotFound.
func (r *BookingRepo) FindByEmail(ctx context.Context, email, ref string) (*model.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE email = ?`
	args := []interface{}{email}
	if ref != "" {
		q += ` AND ref = ?`
		args = append(args, ref)
	}
	q += ` ORDER BY id DESC LIMIT 1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListAll returns every booking, newest first. The admin view is the
// only caller; at this scale pagination is not worth its complexity.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	var createdAt, addons string
	if err := row.Scan(
		&b.ID, &createdAt, &b.Ref, &b.Name, &b.Email, &b.Phone, &b.Package,
		&b.CheckIn, &b.CheckOut, &b.Nights, &b.Guests, &addons,
		&b.Subtotal, &b.Tax, &b.Total, &b.PayOption, &b.PayStatus, &b.Notes,
	); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		b.CreatedAt = t
	}
	b.AddOns = splitAddOns(addons)
	return &b, nil
}

// Add-ons live in a single text column joined with ", ", matching the
// CSV export format. Add-on names never contain that separator.
func joinAddOns(names []string) string { return strings.Join(names, ", ") }

func splitAddOns(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ", ")
}

// isDuplicate recognises unique-constraint violations from both
// supported drivers: MySQL error 1062 and the SQLite unique-constraint
// family.
func isDuplicate(err error) bool {
	var my *mysql.MySQLError
	if errors.As(err, &my) {
		return my.Number == 1062
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
