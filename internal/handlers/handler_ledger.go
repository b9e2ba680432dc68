package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for journal posting and chart seeding.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the journal.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)

	rg.POST("/journal-entries", h.postJournalEntry)
	rg.POST("/journal-entries/:journal_entry_id/reverse", h.reverseJournalEntry)
	rg.POST("/chart-of-accounts", h.ensureChartOfAccounts)
}

func (h *ledgerHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid journal entry payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entryDate. Use YYYY-MM-DD"})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	entry, err := h.ledgerService.PostJournalEntry(c.Request.Context(), portssvc.PostJournalEntryInput{
		BusinessID:    businessID,
		Description:   req.Description,
		ReferenceType: domain.ReferenceType(req.ReferenceType),
		ReferenceID:   req.ReferenceID,
		EntryDate:     entryDate,
		Lines:         req.ToCodedLines(),
		CreatedBy:     userID,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *ledgerHandler) reverseJournalEntry(c *gin.Context) {
	businessID := c.Param("business_id")
	journalEntryID := c.Param("journal_entry_id")
	userID, _ := middleware.GetUserIDFromContext(c)

	entry, err := h.ledgerService.ReverseJournalEntry(c.Request.Context(), businessID, journalEntryID, userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *ledgerHandler) ensureChartOfAccounts(c *gin.Context) {
	businessID := c.Param("business_id")

	if err := h.ledgerService.EnsureChartOfAccounts(c.Request.Context(), businessID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondLedgerError maps service errors onto HTTP statuses.
func respondLedgerError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unknownCode *apperrors.UnknownAccountCodeError
	switch {
	case errors.As(err, &unknownCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": unknownCode.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrChartNotSeeded):
		c.JSON(http.StatusConflict, gin.H{"error": "Chart of accounts not seeded. Call the chart-of-accounts endpoint first."})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Ledger operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
