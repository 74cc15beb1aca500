package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kabusim/internal/errors"
	"kabusim/internal/ledger"
	"kabusim/internal/pagination"
	"kabusim/internal/portfolio"
)

// PortfolioHandler handles portfolio, history, and transaction-log requests.
type PortfolioHandler struct {
	ledger ledger.Servicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(l ledger.Servicer) *PortfolioHandler {
	return &PortfolioHandler{ledger: l}
}

// portfolioQuery holds the sort parameters of the holdings table.
type portfolioQuery struct {
	Sort      string `form:"sort" binding:"omitempty,sort_column"`
	Direction string `form:"direction" binding:"omitempty,sort_direction"`
}

// GetPortfolio returns the asset summary and the enriched holdings table,
// sorted by ratio descending unless the query says otherwise.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	var q portfolioQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Sort == "" {
		q.Sort = string(portfolio.SortByRatio)
		q.Direction = string(portfolio.SortDesc)
	}
	if q.Direction == "" {
		q.Direction = string(portfolio.SortAsc)
	}

	state := h.ledger.State()
	summary := portfolio.Summarize(state)
	holdings := portfolio.Enrich(state.Holdings, summary.TotalAssets)
	portfolio.Sort(holdings, portfolio.SortColumn(q.Sort), portfolio.SortDirection(q.Direction))

	c.JSON(http.StatusOK, gin.H{
		"summary":  summary,
		"holdings": holdings,
	})
}

// GetHistory returns asset snapshots, optionally bounded by from/to dates
// given as RFC3339 or YYYY-MM-DD.
func (h *PortfolioHandler) GetHistory(c *gin.Context) {
	var from, to time.Time
	var err error

	if v := c.Query("from"); v != "" {
		if from, err = parseFlexibleTime(v); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date"))
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = parseFlexibleTime(v); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"history": h.ledger.History(from, to)})
}

// ListTransactions returns a page of the transaction log, newest first.
func (h *PortfolioHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.ledger.Transactions(page))
}
