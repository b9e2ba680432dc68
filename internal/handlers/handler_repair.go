package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// repairHandler handles the owner-triggered reconciliation operations.
type repairHandler struct {
	repairService portssvc.RepairSvc
}

func newRepairHandler(rs portssvc.RepairSvc) *repairHandler {
	return &repairHandler{repairService: rs}
}

// registerRepairRoutes registers the repair routes. They run full
// reconciliation scans, so they sit behind the rate limiter.
func registerRepairRoutes(rg *gin.RouterGroup, repairService portssvc.RepairSvc, repairLimiter *limiter.Limiter) {
	h := newRepairHandler(repairService)

	repair := rg.Group("/repair")
	if repairLimiter != nil {
		repair.Use(middleware.RateLimit(repairLimiter))
	}
	{
		repair.POST("/sales", h.repairSales)
		repair.POST("/purchases", h.repairPurchases)
		repair.POST("/orphans", h.cleanOrphans)
	}
}

func (h *repairHandler) repairSales(c *gin.Context) {
	businessID := c.Param("business_id")
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.repairService.RepairSalesJournalEntries(c.Request.Context(), businessID, userID)
	if err != nil {
		respondRepairError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RepairResponse{Repaired: result.Repaired})
}

func (h *repairHandler) repairPurchases(c *gin.Context) {
	businessID := c.Param("business_id")
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.repairService.RepairPurchaseJournalEntries(c.Request.Context(), businessID, userID)
	if err != nil {
		respondRepairError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RepairResponse{Repaired: result.Repaired})
}

func (h *repairHandler) cleanOrphans(c *gin.Context) {
	businessID := c.Param("business_id")
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.repairService.CleanOrphanedJournalEntries(c.Request.Context(), businessID, userID)
	if err != nil {
		respondRepairError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CleanupResponse{Cleaned: result.Cleaned})
}

func respondRepairError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Repair operation failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Repair operation failed"})
}
