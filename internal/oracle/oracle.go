// Package oracle supplies simulated market prices. The simulator is fully
// deterministic for a fixed (code, base price, minute bucket) tuple, so
// repeated quotes within the same minute agree and different codes diverge.
package oracle

import (
	"math"
	"time"
)

// Quote is a simulated price for one security at one point in time.
type Quote struct {
	Price         int64   `json:"price"`
	Change        int64   `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// IndexQuote is a simulated market index level.
type IndexQuote struct {
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	Change        int64   `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// Source is the price oracle contract consumed by the market catalog and the
// price refresher.
type Source interface {
	Quote(code string, basePrice int64, asOf time.Time) Quote
	Indices(asOf time.Time) map[string]IndexQuote
}

// marketIndices are the indices recorded alongside asset snapshots.
var marketIndices = []struct {
	ID        string
	Name      string
	BasePrice int64
}{
	{"nikkei225", "日経平均株価", 39000},
	{"topix", "TOPIX", 2700},
}

// Simulator generates pseudo-random but reproducible prices. Movement is a
// daily trend of up to ±3% around the base price plus ±1% intraday noise
// that shifts once per minute.
type Simulator struct{}

// NewSimulator creates a deterministic price simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// BasePrice derives a reference price in the 1,000–10,000 yen range from the
// security code alone, for codes without a known base price.
func BasePrice(code string) int64 {
	return (codeHash(code)%90 + 10) * 100
}

// Quote returns the simulated price for a security. A non-positive basePrice
// falls back to the code-derived base price. The returned price is always a
// positive integer.
func (s *Simulator) Quote(code string, basePrice int64, asOf time.Time) Quote {
	if basePrice <= 0 {
		basePrice = BasePrice(code)
	}

	hash := float64(codeHash(code))

	// Daily trend seeded by the calendar date
	y, m, d := asOf.Date()
	dateSeed := float64(y*10000 + int(m)*100 + d)
	dayTrend := math.Sin(hash + dateSeed)
	price := float64(basePrice) * (1 + dayTrend*0.03)

	// Intraday noise shifts once per minute bucket
	timeSeed := float64(asOf.Unix() / 60)
	noise := math.Sin(timeSeed*0.1+hash) * 0.01
	price *= 1 + noise

	final := int64(math.Floor(price))
	if final < 1 {
		final = 1
	}

	change := final - basePrice
	changePercent := math.Round(float64(change)/float64(basePrice)*100*100) / 100

	return Quote{
		Price:         final,
		Change:        change,
		ChangePercent: changePercent,
	}
}

// Indices returns simulated levels for the tracked market indices.
func (s *Simulator) Indices(asOf time.Time) map[string]IndexQuote {
	out := make(map[string]IndexQuote, len(marketIndices))
	for _, idx := range marketIndices {
		q := s.Quote(idx.ID, idx.BasePrice, asOf)
		out[idx.ID] = IndexQuote{
			Name:          idx.Name,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
		}
	}
	return out
}

func codeHash(code string) int64 {
	var sum int64
	for _, b := range []byte(code) {
		sum += int64(b)
	}
	return sum
}
