package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
	"github.com/shopledger/shop_ledger_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	repairLimiter *limiter.Limiter,
) {
	registerBindingRules()

	r.Use(cors.Default())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, services, repairLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	repairLimiter *limiter.Limiter,
) {
	// The auth gateway upstream authenticates requests and injects X-User-ID.
	v1 := r.Group("/api/v1", middleware.ActingUserMiddleware())

	business := v1.Group("/businesses/:business_id")
	registerLedgerRoutes(business, services.Ledger)
	registerStatementRoutes(business, services.Statements)
	registerRepairRoutes(business, services.Repair, repairLimiter)
}

func registerBindingRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("reference_type", dto.ValidReferenceType)
	}
}
