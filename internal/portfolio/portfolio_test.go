package portfolio

import (
	"testing"

	"kabusim/internal/models"
)

func sampleState() models.LedgerState {
	return models.LedgerState{
		Cash:           9_000_000,
		InitialCapital: 10_000_000,
		Holdings: []models.Holding{
			{Code: "7203", Name: "トヨタ自動車", Quantity: 100, AveragePrice: 3770, CurrentPrice: 3900},
			{Code: "6758", Name: "ソニーグループ", Quantity: 50, AveragePrice: 2800, CurrentPrice: 2700},
		},
	}
}

func TestSummarize(t *testing.T) {
	t.Run("computes_totals_and_profit", func(t *testing.T) {
		s := Summarize(sampleState())

		wantStock := int64(3900*100 + 2700*50)
		if s.TotalStockValue != wantStock {
			t.Errorf("expected stock value %d, got %d", wantStock, s.TotalStockValue)
		}
		if s.TotalAssets != 9_000_000+wantStock {
			t.Errorf("expected total assets %d, got %d", 9_000_000+wantStock, s.TotalAssets)
		}
		if s.Profit != s.TotalAssets-10_000_000 {
			t.Errorf("expected profit %d, got %d", s.TotalAssets-10_000_000, s.Profit)
		}
		wantPercent := float64(s.Profit) / 10_000_000 * 100
		if s.ProfitPercent != wantPercent {
			t.Errorf("expected profit percent %f, got %f", wantPercent, s.ProfitPercent)
		}
	})

	t.Run("zero_capital_avoids_division", func(t *testing.T) {
		s := Summarize(models.LedgerState{})
		if s.ProfitPercent != 0 {
			t.Errorf("expected 0 profit percent, got %f", s.ProfitPercent)
		}
	})
}

func TestEnrich(t *testing.T) {
	state := sampleState()
	enriched := Enrich(state.Holdings, state.TotalAssets())

	if len(enriched) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(enriched))
	}

	toyota := enriched[0]
	if toyota.Value != 390_000 {
		t.Errorf("expected value 390000, got %d", toyota.Value)
	}
	if toyota.ProfitLoss != (3900-3770)*100 {
		t.Errorf("expected P/L 13000, got %f", toyota.ProfitLoss)
	}
	wantRatio := float64(390_000) / float64(state.TotalAssets()) * 100
	if toyota.Ratio != wantRatio {
		t.Errorf("expected ratio %f, got %f", wantRatio, toyota.Ratio)
	}

	sony := enriched[1]
	if sony.ProfitLoss != (2700-2800)*50 {
		t.Errorf("expected negative P/L -5000, got %f", sony.ProfitLoss)
	}
}

func TestEnrichZeroAssets(t *testing.T) {
	holdings := []models.Holding{{Code: "7203", Quantity: 10, CurrentPrice: 100}}
	enriched := Enrich(holdings, 0)
	if enriched[0].Ratio != 0 {
		t.Errorf("expected ratio 0 with zero total assets, got %f", enriched[0].Ratio)
	}
}

func TestSort(t *testing.T) {
	build := func() []EnrichedHolding {
		state := sampleState()
		return Enrich(state.Holdings, state.TotalAssets())
	}

	t.Run("by_code_asc", func(t *testing.T) {
		h := build()
		Sort(h, SortByCode, SortAsc)
		if h[0].Code != "6758" || h[1].Code != "7203" {
			t.Errorf("unexpected order: %s, %s", h[0].Code, h[1].Code)
		}
	})

	t.Run("by_value_desc", func(t *testing.T) {
		h := build()
		Sort(h, SortByValue, SortDesc)
		if h[0].Value < h[1].Value {
			t.Errorf("expected descending values: %d, %d", h[0].Value, h[1].Value)
		}
	})

	t.Run("by_pl_asc_puts_losses_first", func(t *testing.T) {
		h := build()
		Sort(h, SortByPL, SortAsc)
		if h[0].Code != "6758" {
			t.Errorf("expected the losing position first, got %s", h[0].Code)
		}
	})

	t.Run("unknown_column_defaults_to_ratio_desc", func(t *testing.T) {
		h := build()
		Sort(h, SortColumn("bogus"), SortAsc)
		if h[0].Ratio < h[1].Ratio {
			t.Errorf("expected ratio-descending default: %f, %f", h[0].Ratio, h[1].Ratio)
		}
	})
}
