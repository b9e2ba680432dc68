package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// statementHandler handles HTTP requests for the derived financial statements.
type statementHandler struct {
	statementService portssvc.StatementSvc
}

func newStatementHandler(ss portssvc.StatementSvc) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers routes related to financial statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc) {
	h := newStatementHandler(statementService)

	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cashflow", h.getCashflow)
	}
}

func (h *statementHandler) getIncomeStatement(c *gin.Context) {
	businessID := c.Param("business_id")
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	stmt, err := h.statementService.IncomeStatement(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondStatementError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(stmt, from.Format("2006-01-02"), to.Format("2006-01-02")))
}

func (h *statementHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	asOfStr := c.DefaultQuery("asOf", time.Now().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	sheet, err := h.statementService.BalanceSheet(c.Request.Context(), businessID, asOf)
	if err != nil {
		respondStatementError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet, asOfStr))
}

func (h *statementHandler) getCashflow(c *gin.Context) {
	businessID := c.Param("business_id")
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	stmt, err := h.statementService.Cashflow(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondStatementError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCashflowResponse(stmt, from.Format("2006-01-02"), to.Format("2006-01-02")))
}

// parsePeriod reads the from/to query parameters, defaulting to the current
// month when absent. It writes the error response itself on bad input.
func parsePeriod(c *gin.Context) (from, to time.Time, ok bool) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	fromStr := c.DefaultQuery("from", monthStart.Format("2006-01-02"))
	toStr := c.DefaultQuery("to", now.Format("2006-01-02"))

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func respondStatementError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Failed to derive statement", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
}
