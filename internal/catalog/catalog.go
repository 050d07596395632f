// Package catalog holds the static package and add-on offering. The
// catalog is loaded once at startup and never changes while the server
// runs; booked prices are frozen on the reservation record, so editing
// the catalog never rewrites history.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Package is a lodging tier with a fixed nightly price in the smallest
// currency unit (whole rupees here).
type Package struct {
	Name        string   `json:"name"`
	PerNight    int64    `json:"per_night"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// AddOn is an optional extra. Flat add-ons are charged once per booking;
// per-guest-per-night add-ons scale with guests and nights.
type AddOn struct {
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	PerGuestPerNight bool   `json:"per_guest_per_night"`
}

// Catalog is an ordered, immutable set of packages and add-ons. Order is
// preserved so the booking form can render entries as configured.
type Catalog struct {
	Packages []Package `json:"packages"`
	AddOns   []AddOn   `json:"addons"`
}

// Default returns the built-in Amber Palace offering.
func Default() *Catalog {
	return &Catalog{
		Packages: []Package{
			{
				Name:        "Eco",
				PerNight:    7500,
				Description: "Comfort essentials for smart travelers.",
				Highlights:  []string{"AC Deluxe Room", "Wi-Fi", "24/7 Front Desk", "Temple Info Helpdesk"},
			},
			{
				Name:        "Prime",
				PerNight:    10000,
				Description: "Premium comfort with added perks.",
				Highlights:  []string{"Suite Upgrade", "Breakfast Included", "Airport Pickup (One-way)", "Priority Check-in"},
			},
		},
		AddOns: []AddOn{
			{Name: "Airport Pickup (One-way)", Price: 0},
			{Name: "Temple Darshan Guide", Price: 0},
			{Name: "Breakfast Buffet (per guest per night)", Price: 299, PerGuestPerNight: true},
		},
	}
}

// Load reads a catalog from the JSON file at path. An empty path selects
// the built-in default, so the server runs without any catalog file.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("no packages defined")
	}
	seen := make(map[string]bool, len(c.Packages))
	for _, p := range c.Packages {
		if p.Name == "" {
			return fmt.Errorf("package with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate package %q", p.Name)
		}
		seen[p.Name] = true
		if p.PerNight <= 0 {
			return fmt.Errorf("package %q: per_night must be positive", p.Name)
		}
	}
	seenAdd := make(map[string]bool, len(c.AddOns))
	for _, a := range c.AddOns {
		if a.Name == "" {
			return fmt.Errorf("add-on with empty name")
		}
		if seenAdd[a.Name] {
			return fmt.Errorf("duplicate add-on %q", a.Name)
		}
		seenAdd[a.Name] = true
		if a.Price < 0 {
			return fmt.Errorf("add-on %q: price must not be negative", a.Name)
		}
	}
	return nil
}

// Package returns the package with the given name.
func (c *Catalog) Package(name string) (Package, bool) {
	for _, p := range c.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return Package{}, false
}

// AddOn returns the add-on with the given name.
func (c *Catalog) AddOn(name string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.Name == name {
			return a, true
		}
	}
	return AddOn{}, false
}
