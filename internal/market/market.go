// Package market owns the catalog of tradable securities and assembles
// quotes by combining catalog base prices with the price oracle.
package market

import (
	"time"

	apperrors "kabusim/internal/errors"
	"kabusim/internal/models"
	"kabusim/internal/oracle"
)

// Servicer defines the market catalog contract consumed by handlers and the
// price refresher.
type Servicer interface {
	List() []models.SecurityListing
	Quote(code string) (*models.SecurityListing, error)
	Indices() map[string]oracle.IndexQuote
}

// Catalog is the listing catalog plus the clock used for quoting.
type Catalog struct {
	source   oracle.Source
	now      func() time.Time
	listings []models.SecurityListing
	byCode   map[string]int
}

var _ Servicer = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the quoting clock. Used by tests to pin the oracle's
// minute bucket.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// NewCatalog creates a catalog seeded with the built-in Tokyo listings.
func NewCatalog(source oracle.Source, opts ...Option) *Catalog {
	c := &Catalog{
		source:   source,
		now:      time.Now,
		listings: tokyoListings,
		byCode:   make(map[string]int, len(tokyoListings)),
	}
	for i, l := range tokyoListings {
		c.byCode[l.Code] = i
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns every catalog listing quoted at the current time.
func (c *Catalog) List() []models.SecurityListing {
	asOf := c.now()
	out := make([]models.SecurityListing, len(c.listings))
	for i, l := range c.listings {
		out[i] = c.quoted(l, asOf)
	}
	return out
}

// Quote returns a single listing with current price data, or
// ErrSecurityNotFound for codes outside the catalog.
func (c *Catalog) Quote(code string) (*models.SecurityListing, error) {
	i, ok := c.byCode[code]
	if !ok {
		return nil, apperrors.ErrSecurityNotFound
	}
	l := c.quoted(c.listings[i], c.now())
	return &l, nil
}

// Indices returns simulated levels for the tracked market indices.
func (c *Catalog) Indices() map[string]oracle.IndexQuote {
	return c.source.Indices(c.now())
}

func (c *Catalog) quoted(l models.SecurityListing, asOf time.Time) models.SecurityListing {
	q := c.source.Quote(l.Code, l.BasePrice, asOf)
	l.Price = q.Price
	l.Change = q.Change
	l.ChangePercent = q.ChangePercent
	return l
}
