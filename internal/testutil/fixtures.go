package testutil

import "kabusim/internal/models"

// ToyotaListing is the catalog entry most tests trade against.
var ToyotaListing = models.SecurityListing{
	Code:      "7203",
	Name:      "トヨタ自動車",
	BasePrice: 3770,
	Price:     3770,
}

// BuyOrder builds a buy-side trade order with a valid reason.
func BuyOrder(code, name string, price, quantity int64) models.TradeOrder {
	return models.TradeOrder{
		Code:     code,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Reason:   "長期保有のため購入",
	}
}

// SellOrder builds a sell-side trade order with a valid reason.
func SellOrder(code, name string, price, quantity int64) models.TradeOrder {
	return models.TradeOrder{
		Code:     code,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Reason:   "利確のため売却",
	}
}
