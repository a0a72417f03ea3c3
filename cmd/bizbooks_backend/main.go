package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/handlers"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizbooks/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title BizBooks Backend API
// @version 1.0
// @description Expense, liability, payroll, cashflow, cheque and capital tracking for small businesses.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(limiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
