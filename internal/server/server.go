// Package server provides HTTP server setup and configuration.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sebasr/information-service/internal/config"
	"github.com/sebasr/information-service/internal/handlers"
	"github.com/sebasr/information-service/internal/information"
	"github.com/sebasr/information-service/internal/middleware"
	"github.com/sebasr/information-service/internal/repository"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const healthPath = "/api/v1/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Provider   information.Provider        // Optional: chosen from Config when nil
	LookupRepo repository.LookupRepository // Optional: nil disables the audit log
	DBHealth   handlers.HealthChecker      // Optional: nil when no database is configured
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Release mode keeps gin's debug route dump out of the structured log
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger, healthPath))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "Content-Encoding", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimitMiddleware(deps.Config.RateLimit.Limit, deps.Config.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	provider := deps.Provider
	if provider == nil {
		provider = information.NewProvider(deps.Config.Information.LegacySharedRecord)
	}

	informationHandler := handlers.NewInformationHandler(provider, deps.Logger)
	if deps.LookupRepo != nil {
		informationHandler = informationHandler.WithLookupRepository(deps.LookupRepo, deps.Config.Audit.Timeout)
	}

	var checkers []handlers.HealthChecker
	if deps.DBHealth != nil {
		checkers = append(checkers, deps.DBHealth)
	}
	healthHandler := handlers.NewHealthHandler(Version, checkers...)

	// Contract path
	router.GET("/information", informationHandler.GetInformation)
	router.POST("/information", informationHandler.GetInformation)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)
		v1.GET("/information", informationHandler.GetInformation)
		v1.POST("/information", informationHandler.GetInformation)

		if deps.LookupRepo != nil {
			v1.GET("/lookups", handlers.NewLookupHandler(deps.LookupRepo).ListRecent)
		}
	}

	return router
}
