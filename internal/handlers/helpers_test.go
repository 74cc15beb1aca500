package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kabusim/internal/ledger"
	"kabusim/internal/market"
	"kabusim/internal/models"
	"kabusim/internal/oracle"
	"kabusim/internal/pagination"
	"kabusim/internal/validator"
)

// --- mock ledger ---

type mockLedger struct {
	buyFn           func(order models.TradeOrder) (*models.Transaction, error)
	sellFn          func(order models.TradeOrder) (*models.Transaction, error)
	resetFn         func()
	refreshPricesFn func(updates, indexPrices map[string]int64) bool
	stateFn         func() models.LedgerState
	holdingsFn      func() []models.Holding
	transactionsFn  func(page pagination.PageRequest) pagination.PageResponse[models.Transaction]
	historyFn       func(from, to time.Time) []models.AssetSnapshot
}

var _ ledger.Servicer = (*mockLedger)(nil)

func (m *mockLedger) Buy(order models.TradeOrder) (*models.Transaction, error) {
	if m.buyFn != nil {
		return m.buyFn(order)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedger) Sell(order models.TradeOrder) (*models.Transaction, error) {
	if m.sellFn != nil {
		return m.sellFn(order)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedger) Reset() {
	if m.resetFn != nil {
		m.resetFn()
	}
}

func (m *mockLedger) RecordSnapshot() models.AssetSnapshot {
	return models.AssetSnapshot{}
}

func (m *mockLedger) RefreshPrices(updates, indexPrices map[string]int64) bool {
	if m.refreshPricesFn != nil {
		return m.refreshPricesFn(updates, indexPrices)
	}
	return false
}

func (m *mockLedger) State() models.LedgerState {
	if m.stateFn != nil {
		return m.stateFn()
	}
	return models.LedgerState{}
}

func (m *mockLedger) Holdings() []models.Holding {
	if m.holdingsFn != nil {
		return m.holdingsFn()
	}
	return nil
}

func (m *mockLedger) Transactions(page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	if m.transactionsFn != nil {
		return m.transactionsFn(page)
	}
	page.Defaults()
	return pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
}

func (m *mockLedger) History(from, to time.Time) []models.AssetSnapshot {
	if m.historyFn != nil {
		return m.historyFn(from, to)
	}
	return nil
}

// --- mock market catalog ---

type mockCatalog struct {
	listFn    func() []models.SecurityListing
	quoteFn   func(code string) (*models.SecurityListing, error)
	indicesFn func() map[string]oracle.IndexQuote
}

var _ market.Servicer = (*mockCatalog)(nil)

func (m *mockCatalog) List() []models.SecurityListing {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil
}

func (m *mockCatalog) Quote(code string) (*models.SecurityListing, error) {
	if m.quoteFn != nil {
		return m.quoteFn(code)
	}
	return &models.SecurityListing{Code: code, Price: 1000}, nil
}

func (m *mockCatalog) Indices() map[string]oracle.IndexQuote {
	if m.indicesFn != nil {
		return m.indicesFn()
	}
	return nil
}

// --- mock refresher ---

type mockRefresher struct {
	refreshed bool
	calls     int
}

func (m *mockRefresher) RefreshOnce() bool {
	m.calls++
	return m.refreshed
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
