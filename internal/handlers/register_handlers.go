package handlers

import (
	"github.com/SscSPs/spendcheck/cmd/docs"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/middleware"
	"github.com/SscSPs/spendcheck/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	verifier middleware.TokenVerifier,
) {
	RegisterValidators()

	r.GET("/", getHome)
	r.GET("/health", getHealth)

	setupAPIRoutes(r, verifier, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the per-user /api group. Every route requires a
// bearer token whose subject matches the :userId path parameter.
func setupAPIRoutes(
	r *gin.Engine,
	verifier middleware.TokenVerifier,
	services *portssvc.ServiceContainer,
) {
	user := r.Group("/api/users/:userId",
		middleware.AuthMiddleware(verifier),
		middleware.RequireSelf("userId"),
	)

	RegisterTransactionRoutes(user, services.Transaction, services.Analytics)
	RegisterAnalyticsRoutes(user, services.Analytics)
	RegisterBudgetRoutes(user, services.Budget, services.Analytics, nil)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
