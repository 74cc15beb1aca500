package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kabusim/internal/handlers"
	"kabusim/internal/ledger"
	"kabusim/internal/logger"
	"kabusim/internal/market"
	"kabusim/internal/middleware"
	"kabusim/internal/notify"
	"kabusim/internal/oracle"
	"kabusim/internal/refresh"
	"kabusim/internal/store"
	"kabusim/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Adapter *store.SQLiteAdapter
	Ledger  *ledger.Ledger
	Router  *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// testClock pins the oracle minute bucket so quotes stay stable per test run.
var testClock = func() time.Time {
	return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedStore creates an isolated in-memory SQLite store for a single test.
func setupIsolatedStore(t *testing.T) *store.SQLiteAdapter {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	adapter, err := store.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithStore(t, setupIsolatedStore(t))
}

// setupAppWithStore builds the stack over an existing store, so tests can
// simulate a restart by building a second app on the same store.
func setupAppWithStore(t *testing.T, adapter *store.SQLiteAdapter) *testApp {
	t.Helper()

	notifier := notify.NewLogNotifier(logger.Get())
	gameLedger, err := ledger.New(adapter, notifier, 10_000_000)
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}

	catalog := market.NewCatalog(oracle.NewSimulator(), market.WithClock(testClock))
	refresher := refresh.New(catalog, gameLedger, time.Minute)

	marketHandler := handlers.NewMarketHandler(catalog)
	tradeHandler := handlers.NewTradeHandler(gameLedger, catalog)
	portfolioHandler := handlers.NewPortfolioHandler(gameLedger)
	gameHandler := handlers.NewGameHandler(gameLedger, refresher)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.GET("/market", marketHandler.ListSecurities)
	v1.GET("/market/indices", marketHandler.GetIndices)
	v1.GET("/market/:code", marketHandler.GetSecurity)
	v1.POST("/trades/buy", tradeHandler.Buy)
	v1.POST("/trades/sell", tradeHandler.Sell)
	v1.GET("/portfolio", portfolioHandler.GetPortfolio)
	v1.GET("/portfolio/history", portfolioHandler.GetHistory)
	v1.GET("/transactions", portfolioHandler.ListTransactions)
	v1.POST("/game/reset", gameHandler.Reset)
	v1.POST("/game/refresh", gameHandler.Refresh)

	return &testApp{Adapter: adapter, Ledger: gameLedger, Router: router}
}

func (app *testApp) doRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
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

// quotePrice fetches the current simulated price for a code through the API.
func (app *testApp) quotePrice(t *testing.T, code string) int64 {
	t.Helper()

	rec := app.doRequest("GET", "/api/v1/market/"+code, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("failed to quote %s: %d %s", code, rec.Code, rec.Body.String())
	}
	sec := parseJSON(t, rec)["security"].(map[string]interface{})
	return int64(sec["price"].(float64))
}
