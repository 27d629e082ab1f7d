package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/ecosetu/ewallet_backend/cmd/docs"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portssvc "github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
	"github.com/ecosetu/ewallet_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	transferLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pricing catalog is public so collection centres can display it
	walletHandler := NewWalletHandler(services.Wallet, services.Transfer)
	r.GET("/api/v1/pricing", walletHandler.GetPricing)

	setupAPIV1Routes(r, cfg, services, walletHandler, transferLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	walletHandler *WalletHandler,
	transferLimiter *limiter.Limiter,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerWalletRoutes(v1, walletHandler)
	registerScanRoutes(v1, services, transferLimiter)
}

func registerWalletRoutes(v1 *gin.RouterGroup, h *WalletHandler) {
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	v1.POST("/enroll", adminOnly, h.Enroll)

	wallets := v1.Group("/wallets")
	{
		wallets.GET("/:id", h.GetWallet)
		wallets.GET("/:id/movements", h.ListMovements)
		wallets.POST("/:id/freeze", adminOnly, h.SetFrozen)
		wallets.POST("/:id/adjust", adminOnly, h.Adjust)
	}

	movements := v1.Group("/movements")
	{
		movements.GET("/:id", h.GetMovement)
		movements.GET("/:id/ewaste", h.GetEWasteRecord)
	}
}

func registerScanRoutes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer, transferLimiter *limiter.Limiter) {
	scanHandler := NewScanHandler(services.Token, services.Transfer)
	transferHandler := NewTransferHandler(services.Transfer)

	operators := middleware.RequireRoles(domain.RoleMunicipality, domain.RoleWaterplant, domain.RoleAdmin)
	rateLimited := middleware.RateLimit(transferLimiter)

	v1.POST("/scan", operators, rateLimited, scanHandler.Scan)
	v1.POST("/transfer", operators, rateLimited, transferHandler.Transfer)

	tokens := v1.Group("/tokens", middleware.RequireRoles(domain.RoleAdmin))
	{
		tokens.POST("/:userID/regenerate", scanHandler.Regenerate)
		tokens.POST("/:userID/deactivate", scanHandler.Deactivate)
		tokens.POST("/:userID/reactivate", scanHandler.Reactivate)
	}
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
