package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/market_prices_app/cmd/docs"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// metrics may be nil; exportMiddleware only wraps the export downloads.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metrics http.Handler,
	exportMiddleware ...gin.HandlerFunc,
) {
	system := newSystemHandler(services.SyncLog, services.Health)

	// Add health check route
	r.GET("/health", system.health)

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	setupAPIV1Routes(r, cfg, services, system, exportMiddleware)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	system *systemHandler,
	exportMiddleware []gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	registerPriceRoutes(v1, newPriceHandler(services.Prices, cfg.ReportLocation, time.Now))
	registerRateRoutes(v1, newRateHandler(services.Rates, cfg.ReportLocation, time.Now))
	registerExportRoutes(v1, services.Export, exportMiddleware...)

	v1.GET("/sync/logs", system.listSyncLogs)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
