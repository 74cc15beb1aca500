package models

import "time"

// TradeType represents the direction of an executed trade.
type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

// TradeOrder is an immediate market-fill order at a known price. Unlike a
// SecurityListing the price is mandatory here: orders are only built at the
// moment of execution, from a freshly quoted listing.
type TradeOrder struct {
	Code     string
	Name     string
	Price    int64
	Quantity int64
	Reason   string
}

// Transaction is an immutable record of one executed trade. The transaction
// log is ordered newest-first; records are never mutated after creation.
type Transaction struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Type     TradeType `json:"type"`
	Quantity int64     `json:"quantity"`
	Price    int64     `json:"price"`
	Total    int64     `json:"total"`
	Reason   string    `json:"reason"`
}
