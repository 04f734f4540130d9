package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerCurrencyRoutes(r, services.Currency)
	registerExchangeRateRoutes(r, services.ExchangeRate)
}
