package models

import "time"

// AssetSnapshot is a point-in-time record of total portfolio value.
// Snapshots form an append-only log; TotalAssets == Cash + StockValue holds
// at creation time for every entry.
type AssetSnapshot struct {
	Date        time.Time        `json:"date"`
	TotalAssets int64            `json:"totalAssets"`
	Cash        int64            `json:"cash"`
	StockValue  int64            `json:"stockValue"`
	IndexPrices map[string]int64 `json:"indexPrices,omitempty"`
}
