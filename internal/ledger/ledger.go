// Package ledger implements the portfolio ledger and accounting engine: cash,
// holdings, the transaction log, and the asset-history log. Every public
// operation is one critical section, so read-modify-write on cash and
// holdings is safe with concurrent callers.
package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "kabusim/internal/errors"
	"kabusim/internal/logger"
	"kabusim/internal/models"
	"kabusim/internal/notify"
	"kabusim/internal/pagination"
	"kabusim/internal/store"
)

// Servicer defines the contract for ledger business logic.
type Servicer interface {
	Buy(order models.TradeOrder) (*models.Transaction, error)
	Sell(order models.TradeOrder) (*models.Transaction, error)
	Reset()
	RecordSnapshot() models.AssetSnapshot
	RefreshPrices(updates map[string]int64, indexPrices map[string]int64) bool
	State() models.LedgerState
	Holdings() []models.Holding
	Transactions(page pagination.PageRequest) pagination.PageResponse[models.Transaction]
	History(from, to time.Time) []models.AssetSnapshot
}

// Ledger owns the full game state and mutates it under a single mutex.
// Validation happens before any state write, so a failed operation is always
// a no-op.
type Ledger struct {
	mu       sync.Mutex
	state    models.LedgerState
	store    store.Adapter
	notifier notify.Notifier
	now      func() time.Time
}

var _ Servicer = (*Ledger)(nil)

// New creates a Ledger, rehydrating persisted state if any exists. A fresh
// ledger starts with cash == initialCapital == startingCapital.
func New(adapter store.Adapter, notifier notify.Notifier, startingCapital int64) (*Ledger, error) {
	l := &Ledger{
		store:    adapter,
		notifier: notifier,
		now:      time.Now,
	}

	data, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted ledger: %w", err)
	}
	if len(data) == 0 {
		l.state = newState(startingCapital)
		return l, nil
	}

	var state models.LedgerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode persisted ledger: %w", err)
	}
	if state.InitialCapital == 0 {
		// Blob predates any completed save; start fresh.
		state = newState(startingCapital)
	}
	l.state = state
	return l, nil
}

func newState(capital int64) models.LedgerState {
	return models.LedgerState{
		Cash:           capital,
		InitialCapital: capital,
		Holdings:       []models.Holding{},
		Transactions:   []models.Transaction{},
		AssetHistory:   []models.AssetSnapshot{},
	}
}

// Buy executes a market buy. On success cash decreases by price×quantity,
// the holding's weighted-average cost basis is updated, a buy transaction is
// prepended, and a snapshot is appended.
func (l *Ledger) Buy(order models.TradeOrder) (*models.Transaction, error) {
	if err := validateOrder(order); err != nil {
		l.notifier.Notify(notify.KindError, err.Error())
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	totalCost := order.Price * order.Quantity
	if totalCost > l.state.Cash {
		l.notifier.Notify(notify.KindError,
			fmt.Sprintf("Not enough cash to buy %d shares of %s", order.Quantity, order.Name))
		return nil, apperrors.ErrInsufficientFunds
	}

	l.state.Cash -= totalCost

	if h := l.state.FindHolding(order.Code); h != nil {
		totalValue := h.AveragePrice*float64(h.Quantity) + float64(totalCost)
		h.Quantity += order.Quantity
		h.AveragePrice = totalValue / float64(h.Quantity)
		h.CurrentPrice = order.Price
	} else {
		l.state.Holdings = append(l.state.Holdings, models.Holding{
			Code:         order.Code,
			Name:         order.Name,
			Quantity:     order.Quantity,
			AveragePrice: float64(order.Price),
			CurrentPrice: order.Price,
		})
	}

	tx := l.prependTransaction(models.TradeTypeBuy, order, totalCost)
	l.recordSnapshotLocked(nil)
	l.saveLocked()

	l.notifier.Notify(notify.KindSuccess,
		fmt.Sprintf("Bought %d shares of %s at %d", order.Quantity, order.Name, order.Price))
	return &tx, nil
}

// Sell executes a market sell. The average cost basis of any remaining
// shares is left untouched; the realized gain or loss shows up in the cash
// delta only. Selling the full position removes the holding.
func (l *Ledger) Sell(order models.TradeOrder) (*models.Transaction, error) {
	if err := validateOrder(order); err != nil {
		l.notifier.Notify(notify.KindError, err.Error())
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	h := l.state.FindHolding(order.Code)
	if h == nil || h.Quantity < order.Quantity {
		l.notifier.Notify(notify.KindError,
			fmt.Sprintf("Not enough shares of %s to sell %d", order.Name, order.Quantity))
		return nil, apperrors.ErrInsufficientHoldings
	}

	proceeds := order.Price * order.Quantity
	l.state.Cash += proceeds

	if h.Quantity == order.Quantity {
		l.removeHolding(order.Code)
	} else {
		h.Quantity -= order.Quantity
		h.CurrentPrice = order.Price
	}

	tx := l.prependTransaction(models.TradeTypeSell, order, proceeds)
	l.recordSnapshotLocked(nil)
	l.saveLocked()

	l.notifier.Notify(notify.KindSuccess,
		fmt.Sprintf("Sold %d shares of %s at %d", order.Quantity, order.Name, order.Price))
	return &tx, nil
}

// Reset unconditionally restores the initial state: full starting capital,
// no holdings, empty transaction and history logs.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = newState(l.state.InitialCapital)
	l.saveLocked()
	l.notifier.Notify(notify.KindInfo, "Game reset: starting capital restored")
}

// RecordSnapshot recomputes total assets and appends a snapshot. Called
// internally after every mutation; exposed for callers that want an extra
// point on the asset-history chart.
func (l *Ledger) RecordSnapshot() models.AssetSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := l.recordSnapshotLocked(nil)
	l.saveLocked()
	return snap
}

// RefreshPrices applies fetched prices to the matching holdings. Average
// prices and quantities are untouched. A snapshot is appended only when at
// least one price actually changed or index prices were supplied; the
// returned bool reports whether one was.
func (l *Ledger) RefreshPrices(updates map[string]int64, indexPrices map[string]int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed := false
	for i := range l.state.Holdings {
		if price, ok := updates[l.state.Holdings[i].Code]; ok && l.state.Holdings[i].CurrentPrice != price {
			l.state.Holdings[i].CurrentPrice = price
			changed = true
		}
	}

	if !changed && len(indexPrices) == 0 {
		return false
	}

	l.recordSnapshotLocked(indexPrices)
	l.saveLocked()
	return true
}

// State returns a deep copy of the full ledger state.
func (l *Ledger) State() models.LedgerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Holdings returns a copy of the current holdings.
func (l *Ledger) Holdings() []models.Holding {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Holding, len(l.state.Holdings))
	copy(out, l.state.Holdings)
	return out
}

// Transactions returns a page of the transaction log, newest first.
func (l *Ledger) Transactions(page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	l.mu.Lock()
	defer l.mu.Unlock()

	page.Defaults()
	items := pagination.Slice(l.state.Transactions, page)
	return pagination.NewPageResponse(items, page.Page, page.PageSize, int64(len(l.state.Transactions)))
}

// History returns asset snapshots within [from, to]. Zero bounds are open.
func (l *Ledger) History(from, to time.Time) []models.AssetSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.AssetSnapshot, 0, len(l.state.AssetHistory))
	for _, snap := range l.state.AssetHistory {
		if !from.IsZero() && snap.Date.Before(from) {
			continue
		}
		if !to.IsZero() && snap.Date.After(to) {
			continue
		}
		out = append(out, snap)
	}
	return out
}

func (l *Ledger) prependTransaction(tradeType models.TradeType, order models.TradeOrder, total int64) models.Transaction {
	tx := models.Transaction{
		ID:       newTransactionID(),
		Date:     l.now(),
		Code:     order.Code,
		Name:     order.Name,
		Type:     tradeType,
		Quantity: order.Quantity,
		Price:    order.Price,
		Total:    total,
		Reason:   order.Reason,
	}
	l.state.Transactions = append([]models.Transaction{tx}, l.state.Transactions...)
	return tx
}

func (l *Ledger) recordSnapshotLocked(indexPrices map[string]int64) models.AssetSnapshot {
	stockValue := l.state.StockValue()
	snap := models.AssetSnapshot{
		Date:        l.now(),
		TotalAssets: l.state.Cash + stockValue,
		Cash:        l.state.Cash,
		StockValue:  stockValue,
		IndexPrices: indexPrices,
	}
	l.state.AssetHistory = append(l.state.AssetHistory, snap)
	return snap
}

// saveLocked persists the current state. Persistence is a best-effort side
// effect: the in-memory ledger stays authoritative, so a failed save is
// logged and the operation still succeeds.
func (l *Ledger) saveLocked() {
	data, err := json.Marshal(&l.state)
	if err != nil {
		logger.Get().Errorw("failed to serialize ledger state", "error", err)
		return
	}
	if err := l.store.Save(data); err != nil {
		logger.Get().Warnw("failed to persist ledger state", "error", err)
	}
}

func (l *Ledger) removeHolding(code string) {
	out := l.state.Holdings[:0]
	for _, h := range l.state.Holdings {
		if h.Code != code {
			out = append(out, h)
		}
	}
	l.state.Holdings = out
}

func validateOrder(order models.TradeOrder) error {
	if order.Quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	if order.Price < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Order price must not be negative")
	}
	// Quantities large enough to overflow price×quantity would corrupt cash.
	if order.Price > 0 && order.Quantity > math.MaxInt64/order.Price {
		return apperrors.ErrInvalidQuantity
	}
	if strings.TrimSpace(order.Reason) == "" {
		return apperrors.ErrInvalidReason
	}
	return nil
}

// newTransactionID returns a UUIDv7 so transaction IDs sort by creation
// time, matching the newest-first log order.
func newTransactionID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
