package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kabusim/internal/ledger"
)

// Refresher triggers an on-demand price refresh cycle.
type Refresher interface {
	RefreshOnce() bool
}

// GameHandler handles game lifecycle requests.
type GameHandler struct {
	ledger    ledger.Servicer
	refresher Refresher
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(l ledger.Servicer, refresher Refresher) *GameHandler {
	return &GameHandler{ledger: l, refresher: refresher}
}

// Reset restores the initial game state: full starting capital, no holdings,
// empty logs.
func (h *GameHandler) Reset(c *gin.Context) {
	h.ledger.Reset()
	c.JSON(http.StatusOK, gin.H{
		"message": "Game reset",
		"cash":    h.ledger.State().Cash,
	})
}

// Refresh re-quotes all held securities and the market indices immediately.
func (h *GameHandler) Refresh(c *gin.Context) {
	refreshed := h.refresher.RefreshOnce()
	c.JSON(http.StatusOK, gin.H{"refreshed": refreshed})
}
