package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kabusim/internal/market"
)

// MarketHandler handles market data requests.
type MarketHandler struct {
	catalog market.Servicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(catalog market.Servicer) *MarketHandler {
	return &MarketHandler{catalog: catalog}
}

// ListSecurities returns every listed security with current simulated prices.
func (h *MarketHandler) ListSecurities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"securities": h.catalog.List()})
}

// GetSecurity returns a single security quoted at the current time.
func (h *MarketHandler) GetSecurity(c *gin.Context) {
	listing, err := h.catalog.Quote(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"security": listing})
}

// GetIndices returns current simulated levels for the tracked market indices.
func (h *MarketHandler) GetIndices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indices": h.catalog.Indices()})
}
