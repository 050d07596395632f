package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/amberpalace/hotel-booking/internal/catalog"
	"github.com/amberpalace/hotel-booking/internal/model"
	"github.com/amberpalace/hotel-booking/internal/pricing"
	"github.com/amberpalace/hotel-booking/internal/repository"
	"github.com/amberpalace/hotel-booking/internal/utils"
)

// dateLayout is the wire and storage format for stay dates.
const dateLayout = "2006-01-02"

// refAttempts bounds how many fresh references Submit tries when the
// store reports a collision before giving up on the request.
const refAttempts = 5

// Guest count limits accepted on a single booking.
const (
	minGuests = 1
	maxGuests = 8
)

// BookingStore is the persistence the service needs. The repository
// implements it; tests substitute mocks. Create must report reference
// collisions as repository.ErrDuplicateRef and FindByEmail misses as
// repository.ErrNotFound.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	FindByEmail(ctx context.Context, email, ref string) (*model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
}

// EventPublisher receives a confirmation after a booking is persisted.
// Publishing is best-effort: failures are logged, never surfaced to the
// guest.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, b *model.Booking) error
}

// Booking orchestrates the reservation lifecycle. A submission is
// validated as a whole, priced against the catalog, given a unique
// reference and persisted exactly once; the stored record never changes
// afterwards.
type Booking struct {
	store  BookingStore
	calc   *pricing.Calculator
	cat    *catalog.Catalog
	events EventPublisher // may be nil
	loc    *time.Location
	now    func() time.Time
}

// NewBooking wires the service. events may be nil when no broker is
// configured; loc defaults to UTC when nil.
func NewBooking(store BookingStore, calc *pricing.Calculator, cat *catalog.Catalog, events EventPublisher, loc *time.Location) *Booking {
	if store == nil || calc == nil || cat == nil {
		panic("nil dependency passed to NewBooking")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Booking{store: store, calc: calc, cat: cat, events: events, loc: loc, now: time.Now}
}

// SubmitInput is one raw booking form submission.
type SubmitInput struct {
	Name       string
	Email      string
	Phone      string
	Package    string
	CheckIn    string // "2006-01-02"
	CheckOut   string // "2006-01-02"
	Guests     int
	AddOns     []string
	PayOption  string
	Notes      string
	AgreeTerms bool
}

// Submit runs one booking through collect, validate, price, reference,
// persist and confirm. Validation reports every problem at once via
// ValidationError. Reference collisions are retried with fresh
// references up to refAttempts; any other storage failure comes back as
// BookingFailedError with the cause attached.
func (s *Booking) Submit(ctx context.Context, in SubmitInput) (*model.Booking, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	notes := strings.TrimSpace(in.Notes)
	addons := dedupeAddOns(in.AddOns)

	var msgs []string
	if name == "" {
		msgs = append(msgs, "Name is required.")
	}
	if !utils.ValidEmail(email) {
		msgs = append(msgs, "A valid email is required.")
	}
	if !utils.ValidPhone(phone) {
		msgs = append(msgs, "A valid phone is required.")
	}
	checkIn, errIn := time.Parse(dateLayout, in.CheckIn)
	checkOut, errOut := time.Parse(dateLayout, in.CheckOut)
	if errIn != nil || errOut != nil {
		msgs = append(msgs, "Stay dates must be valid dates (YYYY-MM-DD).")
	} else if !utils.ValidDateRange(checkIn, checkOut) {
		msgs = append(msgs, "Check-out must be after check-in.")
	}
	if in.Guests < minGuests || in.Guests > maxGuests {
		msgs = append(msgs, fmt.Sprintf("Guests must be between %d and %d.", minGuests, maxGuests))
	}
	if _, ok := s.cat.Package(in.Package); !ok {
		msgs = append(msgs, fmt.Sprintf("Unknown package %q.", in.Package))
	}
	if !in.AgreeTerms {
		msgs = append(msgs, "You must accept the terms.")
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	nights := utils.NightsBetween(checkIn, checkOut)
	if nights < 1 {
		nights = 1
	}

	quote, err := s.calc.Quote(in.Package, nights, in.Guests, addons)
	if err != nil {
		// Unknown catalog entries mean the form and the catalog
		// disagree; surface the typed error as-is.
		return nil, fmt.Errorf("quote booking: %w", err)
	}

	payOption, payStatus := model.NormalizePay(in.PayOption)
	createdAt := s.now().In(s.loc)

	b := &model.Booking{
		CreatedAt: createdAt,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Package:   in.Package,
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
		Nights:    nights,
		Guests:    in.Guests,
		AddOns:    addons,
		Subtotal:  quote.Subtotal,
		Tax:       quote.Tax,
		Total:     quote.Total,
		PayOption: payOption,
		PayStatus: payStatus,
		Notes:     notes,
	}

	for attempt := 0; attempt < refAttempts; attempt++ {
		b.Ref = utils.NewBookingRef(createdAt)
		err = s.store.Create(ctx, b)
		if err == nil {
			s.publishConfirmed(ctx, b)
			return b, nil
		}
		if !errors.Is(err, repository.ErrDuplicateRef) {
			return nil, &BookingFailedError{Cause: err}
		}
	}
	return nil, &BookingFailedError{Cause: fmt.Errorf("%w (%d attempts)", ErrReferenceExhausted, refAttempts)}
}

// Lookup finds the guest's most recent reservation by email, narrowed
// to an exact reference when one is given. The email must at least be
// shaped like an address before the store is consulted.
func (s *Booking) Lookup(ctx context.Context, email, ref string) (*model.Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.ValidEmail(email) {
		return nil, &ValidationError{Messages: []string{"A valid email is required."}}
	}
	return s.store.FindByEmail(ctx, email, strings.TrimSpace(ref))
}

// List returns every reservation, newest first. Admin-only caller.
func (s *Booking) List(ctx context.Context) ([]model.Booking, error) {
	return s.store.ListAll(ctx)
}

func (s *Booking) publishConfirmed(ctx context.Context, b *model.Booking) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishBookingConfirmed(ctx, b); err != nil {
		log.Printf("booking %s: confirmation event publish failed: %v", b.Ref, err)
	}
}

// dedupeAddOns keeps the first occurrence of each add-on, preserving
// order. Selected add-ons are a set; charging a duplicate twice would
// inflate the quote.
func dedupeAddOns(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
