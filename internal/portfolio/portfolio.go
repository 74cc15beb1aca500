// Package portfolio derives read-only views from ledger state: the asset
// summary and the enriched, sortable holdings table.
package portfolio

import (
	"sort"

	"kabusim/internal/models"
)

// Summary aggregates the headline numbers shown above the holdings table.
type Summary struct {
	Cash            int64   `json:"cash"`
	TotalStockValue int64   `json:"totalStockValue"`
	TotalAssets     int64   `json:"totalAssets"`
	Profit          int64   `json:"profit"`
	ProfitPercent   float64 `json:"profitPercent"`
	InitialCapital  int64   `json:"initialCapital"`
}

// Summarize computes the asset summary for the given state. Profit is
// measured against the initial capital, not against cost basis.
func Summarize(state models.LedgerState) Summary {
	stockValue := state.StockValue()
	totalAssets := state.Cash + stockValue

	s := Summary{
		Cash:            state.Cash,
		TotalStockValue: stockValue,
		TotalAssets:     totalAssets,
		Profit:          totalAssets - state.InitialCapital,
		InitialCapital:  state.InitialCapital,
	}
	if state.InitialCapital > 0 {
		s.ProfitPercent = float64(s.Profit) / float64(state.InitialCapital) * 100
	}
	return s
}

// EnrichedHolding is a holding annotated with its market value, its share of
// total assets in percent, and its unrealized profit or loss.
type EnrichedHolding struct {
	models.Holding
	Value      int64   `json:"value"`
	Ratio      float64 `json:"ratio"`
	ProfitLoss float64 `json:"profitLoss"`
}

// SortColumn names a sortable column of the holdings table.
type SortColumn string

const (
	SortByCode     SortColumn = "code"
	SortByName     SortColumn = "name"
	SortByQuantity SortColumn = "quantity"
	SortByValue    SortColumn = "value"
	SortByRatio    SortColumn = "ratio"
	SortByPL       SortColumn = "pl"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Enrich annotates each holding with value, ratio, and unrealized P/L. When
// totalAssets is zero the ratio is reported as zero rather than dividing.
func Enrich(holdings []models.Holding, totalAssets int64) []EnrichedHolding {
	out := make([]EnrichedHolding, len(holdings))
	for i, h := range holdings {
		value := h.MarketValue()
		var ratio float64
		if totalAssets > 0 {
			ratio = float64(value) / float64(totalAssets) * 100
		}
		out[i] = EnrichedHolding{
			Holding:    h,
			Value:      value,
			Ratio:      ratio,
			ProfitLoss: (float64(h.CurrentPrice) - h.AveragePrice) * float64(h.Quantity),
		}
	}
	return out
}

// Sort orders holdings in place by the given column and direction. Unknown
// columns fall back to the default ratio-descending order.
func Sort(holdings []EnrichedHolding, column SortColumn, direction SortDirection) {
	less := lessFunc(column)
	if less == nil {
		column, direction = SortByRatio, SortDesc
		less = lessFunc(column)
	}
	sort.SliceStable(holdings, func(i, j int) bool {
		if direction == SortDesc {
			i, j = j, i
		}
		return less(holdings[i], holdings[j])
	})
}

func lessFunc(column SortColumn) func(a, b EnrichedHolding) bool {
	switch column {
	case SortByCode:
		return func(a, b EnrichedHolding) bool { return a.Code < b.Code }
	case SortByName:
		return func(a, b EnrichedHolding) bool { return a.Name < b.Name }
	case SortByQuantity:
		return func(a, b EnrichedHolding) bool { return a.Quantity < b.Quantity }
	case SortByValue:
		return func(a, b EnrichedHolding) bool { return a.Value < b.Value }
	case SortByRatio:
		return func(a, b EnrichedHolding) bool { return a.Ratio < b.Ratio }
	case SortByPL:
		return func(a, b EnrichedHolding) bool { return a.ProfitLoss < b.ProfitLoss }
	default:
		return nil
	}
}
