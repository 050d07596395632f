// Package pricing computes booking quotes from the catalog. All amounts
// are integers in the smallest currency unit; nothing here touches
// storage, so quoting is deterministic given the catalog and inputs.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/amberpalace/hotel-booking/internal/catalog"
)

// DefaultTaxRate is the GST fraction applied when no rate is configured.
const DefaultTaxRate = 0.12

// ErrUnknownPackage and ErrUnknownAddon signal that the caller asked for
// a catalog entry that does not exist. That means the form and the
// catalog are out of sync, so quoting fails loudly instead of guessing.
var (
	ErrUnknownPackage = errors.New("unknown package")
	ErrUnknownAddon   = errors.New("unknown add-on")
)

// Quote is the priced breakdown of one stay. Total is always
// Subtotal + Tax.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Calculator prices stays against a fixed catalog and tax rate.
type Calculator struct {
	catalog *catalog.Catalog
	taxRate float64
}

// NewCalculator returns a Calculator over cat. A non-positive taxRate
// selects DefaultTaxRate.
func NewCalculator(cat *catalog.Catalog, taxRate float64) *Calculator {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &Calculator{catalog: cat, taxRate: taxRate}
}

// Quote prices a stay. Nights below one are clamped to one rather than
// rejected; raw date validation happens before pricing. Per-guest-per-night
// add-ons scale by guests and the clamped night count, flat add-ons are
// charged once. Tax rounds half to even so repeated quoting cannot drift
// a rupee against what a banker's-rounding till would produce.
func (c *Calculator) Quote(pkgName string, nights, guests int, addons []string) (Quote, error) {
	pkg, ok := c.catalog.Package(pkgName)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownPackage, pkgName)
	}
	if nights < 1 {
		nights = 1
	}

	subtotal := pkg.PerNight * int64(nights)
	for _, name := range addons {
		a, ok := c.catalog.AddOn(name)
		if !ok {
			return Quote{}, fmt.Errorf("%w: %q", ErrUnknownAddon, name)
		}
		if a.PerGuestPerNight {
			subtotal += a.Price * int64(guests) * int64(nights)
		} else {
			subtotal += a.Price
		}
	}

	tax := int64(math.RoundToEven(float64(subtotal) * c.taxRate))
	return Quote{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}, nil
}
