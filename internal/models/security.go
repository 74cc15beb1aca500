package models

// SecurityListing is a market-page view of one listed security. Price fields
// are filled in at quote time from the price oracle; a listing fresh out of
// the catalog carries only code, name, and base price.
type SecurityListing struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	BasePrice     int64   `json:"basePrice"`
	Price         int64   `json:"price,omitempty"`
	Change        int64   `json:"change,omitempty"`
	ChangePercent float64 `json:"changePercent,omitempty"`
}

// Order converts a priced listing into an executable trade order.
// The listing must have been quoted first; the ledger validates the rest.
func (l SecurityListing) Order(quantity int64, reason string) TradeOrder {
	return TradeOrder{
		Code:     l.Code,
		Name:     l.Name,
		Price:    l.Price,
		Quantity: quantity,
		Reason:   reason,
	}
}
