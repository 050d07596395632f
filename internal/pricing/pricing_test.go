package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberpalace/hotel-booking/internal/catalog"
	"github.com/amberpalace/hotel-booking/internal/pricing"
)

func defaultCalc() *pricing.Calculator {
	return pricing.NewCalculator(catalog.Default(), pricing.DefaultTaxRate)
}

func TestQuote_EcoTwoNightsTwoGuests(t *testing.T) {
	q, err := defaultCalc().Quote("Eco", 2, 2, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(15000), q.Subtotal)
	assert.Equal(t, int64(1800), q.Tax)
	assert.Equal(t, int64(16800), q.Total)
}

func TestQuote_ClampsNonPositiveNights(t *testing.T) {
	c := defaultCalc()

	one, err := c.Quote("Eco", 1, 2, nil)
	require.NoError(t, err)

	for _, nights := range []int{0, -1, -30} {
		q, err := c.Quote("Eco", nights, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, one, q, "nights=%d should price like a one-night stay", nights)
	}
}

func TestQuote_PerGuestPerNightAddOn(t *testing.T) {
	q, err := defaultCalc().Quote("Eco", 2, 2, []string{"Breakfast Buffet (per guest per night)"})

	require.NoError(t, err)
	// 7500*2 nights + 299*2 guests*2 nights
	assert.Equal(t, int64(16196), q.Subtotal)
	assert.Equal(t, int64(1944), q.Tax)
	assert.Equal(t, int64(18140), q.Total)
}

func TestQuote_FlatAddOnIgnoresGuestsAndNights(t *testing.T) {
	cat := &catalog.Catalog{
		Packages: []catalog.Package{{Name: "Eco", PerNight: 1000}},
		AddOns:   []catalog.AddOn{{Name: "Late Checkout", Price: 500}},
	}
	c := pricing.NewCalculator(cat, pricing.DefaultTaxRate)

	q, err := c.Quote("Eco", 3, 4, []string{"Late Checkout"})

	require.NoError(t, err)
	assert.Equal(t, int64(3500), q.Subtotal, "flat add-on charged once regardless of guests and nights")
}

func TestQuote_RoundsTaxHalfToEven(t *testing.T) {
	cat := &catalog.Catalog{Packages: []catalog.Package{
		{Name: "A", PerNight: 100},
		{Name: "B", PerNight: 300},
	}}
	c := pricing.NewCalculator(cat, 0.125)

	a, err := c.Quote("A", 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), a.Tax, "12.5 rounds down to the even 12")

	b, err := c.Quote("B", 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(38), b.Tax, "37.5 rounds up to the even 38")
}

func TestQuote_UnknownPackage(t *testing.T) {
	_, err := defaultCalc().Quote("Presidential", 2, 2, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrUnknownPackage)
	assert.Contains(t, err.Error(), "Presidential")
}

func TestQuote_UnknownAddOn(t *testing.T) {
	_, err := defaultCalc().Quote("Eco", 2, 2, []string{"Helicopter Tour"})

	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrUnknownAddon)
	assert.Contains(t, err.Error(), "Helicopter Tour")
}

func TestQuote_TotalIsSubtotalPlusTax(t *testing.T) {
	c := defaultCalc()
	for _, pkg := range []string{"Eco", "Prime"} {
		for nights := 1; nights <= 14; nights++ {
			for guests := 1; guests <= 8; guests++ {
				q, err := c.Quote(pkg, nights, guests, []string{"Temple Darshan Guide"})
				require.NoError(t, err)
				assert.Equal(t, q.Subtotal+q.Tax, q.Total,
					"pkg=%s nights=%d guests=%d", pkg, nights, guests)
			}
		}
	}
}

func TestNewCalculator_NonPositiveRateUsesDefault(t *testing.T) {
	c := pricing.NewCalculator(catalog.Default(), 0)

	q, err := c.Quote("Eco", 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), q.Tax)
}
