package handlers

import (
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerAggregateRoutes(v1, services.Aggregate)
	registerCurrencyRoutes(v1, services.Currency, services.Aggregate)
	registerBudgetRoutes(v1, services.Budget, services.PayPeriod)
	registerPayPeriodRoutes(v1, services.PayPeriod)
	registerTransactionRoutes(v1, services.Transaction)
	registerNetWorthRoutes(v1, services.NetWorth)
}
