package refresh

import (
	"context"
	"testing"
	"time"

	"kabusim/internal/ledger"
	"kabusim/internal/market"
	"kabusim/internal/oracle"
	"kabusim/internal/store"
	"kabusim/internal/testutil"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func setup(t *testing.T) (*Refresher, ledger.Servicer, *market.Catalog) {
	t.Helper()

	l, err := ledger.New(store.NewMemoryAdapter(), testutil.NewRecordingNotifier(), 10_000_000)
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	catalog := market.NewCatalog(oracle.NewSimulator(),
		market.WithClock(fixedClock(time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC))))
	return New(catalog, l, time.Minute), l, catalog
}

func TestRefreshOnce(t *testing.T) {
	t.Run("updates_held_prices_and_records_indices", func(t *testing.T) {
		r, l, catalog := setup(t)

		listing, err := catalog.Quote("7203")
		testutil.AssertNoError(t, err)
		_, err = l.Buy(listing.Order(100, "長期保有のため購入"))
		testutil.AssertNoError(t, err)

		appended := r.RefreshOnce()
		if !appended {
			t.Fatal("expected a snapshot to be appended")
		}

		state := l.State()
		if state.Holdings[0].CurrentPrice != listing.Price {
			t.Errorf("expected current price %d, got %d", listing.Price, state.Holdings[0].CurrentPrice)
		}

		latest := state.AssetHistory[len(state.AssetHistory)-1]
		if len(latest.IndexPrices) != 2 {
			t.Fatalf("expected 2 index prices, got %+v", latest.IndexPrices)
		}
		if latest.IndexPrices["nikkei225"] <= 0 || latest.IndexPrices["topix"] <= 0 {
			t.Errorf("expected positive index levels, got %+v", latest.IndexPrices)
		}
	})

	t.Run("works_with_empty_portfolio", func(t *testing.T) {
		r, l, _ := setup(t)

		if !r.RefreshOnce() {
			t.Fatal("expected index snapshot even with no holdings")
		}
		history := l.State().AssetHistory
		if len(history) != 1 {
			t.Fatalf("expected 1 snapshot, got %d", len(history))
		}
		if history[0].TotalAssets != 10_000_000 {
			t.Errorf("expected total assets 10000000, got %d", history[0].TotalAssets)
		}
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _, _ := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
