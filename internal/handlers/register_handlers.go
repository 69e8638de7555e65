package handlers

import (
	"github.com/gathr-app/gathr_backend/cmd/docs"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/notifier"
	"github.com/gathr-app/gathr_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	repos *portsrepo.RepositoryProvider,
	hub *notifier.Hub,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services, repos, hub)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
	repos *portsrepo.RepositoryProvider,
	hub *notifier.Hub,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerExampleRoutes(v1)
	registerUserRoutes(v1, service.User, service.Event)
	registerEventRoutes(v1, service.Event, service.Schedule, repos.EventRepo, repos.UserRepo)
	registerGuestRoutes(v1, service.Schedule)
	registerExpenseRoutes(v1, service.Expense, service.Balancing, service.Identity)
	registerDiscussionRoutes(v1, service.Discussion, service.Identity)
	registerStreamRoutes(v1, hub)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
