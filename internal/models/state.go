package models

// LedgerState is the aggregate root of the paper-trading ledger. It is
// serialized as a flat JSON object with exactly these field names, matching
// the persisted blob format.
type LedgerState struct {
	Cash           int64           `json:"cash"`
	InitialCapital int64           `json:"initialCapital"`
	Holdings       []Holding       `json:"holdings"`
	Transactions   []Transaction   `json:"transactions"`
	AssetHistory   []AssetSnapshot `json:"assetHistory"`
}

// StockValue returns the market value of all holdings at their last known
// prices.
func (s *LedgerState) StockValue() int64 {
	var total int64
	for _, h := range s.Holdings {
		total += h.MarketValue()
	}
	return total
}

// TotalAssets returns cash plus the market value of all holdings.
func (s *LedgerState) TotalAssets() int64 {
	return s.Cash + s.StockValue()
}

// FindHolding returns a pointer into Holdings for the given code, or nil.
func (s *LedgerState) FindHolding(code string) *Holding {
	for i := range s.Holdings {
		if s.Holdings[i].Code == code {
			return &s.Holdings[i]
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand outside the ledger's lock.
func (s *LedgerState) Clone() LedgerState {
	out := LedgerState{
		Cash:           s.Cash,
		InitialCapital: s.InitialCapital,
		Holdings:       make([]Holding, len(s.Holdings)),
		Transactions:   make([]Transaction, len(s.Transactions)),
		AssetHistory:   make([]AssetSnapshot, len(s.AssetHistory)),
	}
	copy(out.Holdings, s.Holdings)
	copy(out.Transactions, s.Transactions)
	for i, snap := range s.AssetHistory {
		if snap.IndexPrices != nil {
			prices := make(map[string]int64, len(snap.IndexPrices))
			for k, v := range snap.IndexPrices {
				prices[k] = v
			}
			snap.IndexPrices = prices
		}
		out.AssetHistory[i] = snap
	}
	return out
}
