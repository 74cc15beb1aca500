package models

// Holding is a ledger-owned position in one security. AveragePrice is the
// quantity-weighted cost basis: it moves on buys only, never on sells or
// price refreshes. A holding whose quantity reaches zero is removed from the
// ledger rather than kept around empty.
type Holding struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice int64   `json:"currentPrice"`
}

// MarketValue returns the position's value at the last known price.
func (h Holding) MarketValue() int64 {
	return h.CurrentPrice * h.Quantity
}
