// Package refresh drives periodic price updates: it quotes every held
// security plus the market indices and feeds the results into the ledger.
package refresh

import (
	"context"
	"time"

	"kabusim/internal/ledger"
	"kabusim/internal/logger"
	"kabusim/internal/market"
)

// Refresher periodically applies fresh quotes to the ledger.
type Refresher struct {
	catalog  market.Servicer
	ledger   ledger.Servicer
	interval time.Duration
}

// New creates a Refresher with the given tick interval.
func New(catalog market.Servicer, l ledger.Servicer, interval time.Duration) *Refresher {
	return &Refresher{
		catalog:  catalog,
		ledger:   l,
		interval: interval,
	}
}

// RefreshOnce quotes all held securities and the market indices, then applies
// them to the ledger. Returns whether an asset snapshot was appended.
func (r *Refresher) RefreshOnce() bool {
	holdings := r.ledger.Holdings()

	updates := make(map[string]int64, len(holdings))
	for _, h := range holdings {
		listing, err := r.catalog.Quote(h.Code)
		if err != nil {
			// Held securities should always be in the catalog; skip strays.
			logger.Get().Warnw("no quote for held security", "code", h.Code, "error", err)
			continue
		}
		updates[h.Code] = listing.Price
	}

	indexPrices := make(map[string]int64)
	for id, q := range r.catalog.Indices() {
		indexPrices[id] = q.Price
	}

	return r.ledger.RefreshPrices(updates, indexPrices)
}

// Run refreshes once immediately, then on every tick until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	r.RefreshOnce()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshOnce()
		}
	}
}
