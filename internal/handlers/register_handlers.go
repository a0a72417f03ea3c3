package handlers

import (
	"net/http"

	"github.com/SscSPs/bizbooks/cmd/docs"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated /api group and delegates to the entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionCookieName))

	registerExpenseRoutes(api, services.Expense)
	registerLiabilityRoutes(api, services.Liability)
	registerEmployeeRoutes(api, services.Employee)
	registerSalaryRoutes(api, services.Salary)
	registerCashflowRoutes(api, services.Cashflow)
	registerPDCRoutes(api, services.PDC)
	registerCapitalRoutes(api, services.Capital)
	registerProfileRoutes(api, services.Profile)
	registerDashboardRoutes(api, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
