package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kabusim/internal/errors"
	"kabusim/internal/ledger"
	"kabusim/internal/market"
)

// TradeHandler handles buy and sell requests. Orders always execute at the
// current simulated price; the client never supplies one.
type TradeHandler struct {
	ledger  ledger.Servicer
	catalog market.Servicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(l ledger.Servicer, catalog market.Servicer) *TradeHandler {
	return &TradeHandler{ledger: l, catalog: catalog}
}

// TradeRequest represents the request payload for a buy or sell order.
type TradeRequest struct {
	Code     string `json:"code" binding:"required,stock_code"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
	Reason   string `json:"reason" binding:"required,min=5,max=500"`
}

// Buy handles a market buy order.
func (h *TradeHandler) Buy(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listing, err := h.catalog.Quote(req.Code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.ledger.Buy(listing.Order(req.Quantity, req.Reason))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": tx,
		"cash":        h.ledger.State().Cash,
	})
}

// Sell handles a market sell order.
func (h *TradeHandler) Sell(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listing, err := h.catalog.Quote(req.Code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.ledger.Sell(listing.Order(req.Quantity, req.Reason))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": tx,
		"cash":        h.ledger.State().Cash,
	})
}
