package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"kabusim/internal/config"
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

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the persistence store
	adapter, err := store.OpenSQLite(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer adapter.Close()

	// Build the ledger and market
	notifier := notify.NewLogNotifier(log)
	gameLedger, err := ledger.New(adapter, notifier, appConfig.StartingCapital)
	if err != nil {
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}
	catalog := market.NewCatalog(oracle.NewSimulator())

	// Start the background price refresher
	refresher := refresh.New(catalog, gameLedger, appConfig.RefreshInterval)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresher.Run(ctx)

	// Register custom binding validators
	validator.Register()

	// Initialize handlers
	marketHandler := handlers.NewMarketHandler(catalog)
	tradeHandler := handlers.NewTradeHandler(gameLedger, catalog)
	portfolioHandler := handlers.NewPortfolioHandler(gameLedger)
	gameHandler := handlers.NewGameHandler(gameLedger, refresher)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Market routes
	marketRoutes := v1.Group("/market")
	marketRoutes.GET("", marketHandler.ListSecurities)
	marketRoutes.GET("/indices", marketHandler.GetIndices)
	marketRoutes.GET("/:code", marketHandler.GetSecurity)

	// Trade routes
	trades := v1.Group("/trades")
	trades.POST("/buy", tradeHandler.Buy)
	trades.POST("/sell", tradeHandler.Sell)

	// Portfolio routes
	v1.GET("/portfolio", portfolioHandler.GetPortfolio)
	v1.GET("/portfolio/history", portfolioHandler.GetHistory)
	v1.GET("/transactions", portfolioHandler.ListTransactions)

	// Game lifecycle routes
	game := v1.Group("/game")
	game.POST("/reset", gameHandler.Reset)
	game.POST("/refresh", gameHandler.Refresh)

	log.Infof("Starting kabusim server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
