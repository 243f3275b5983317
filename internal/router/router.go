package router

import (
	"github.com/gin-gonic/gin"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/handler"
	"procura/internal/middleware"
	"procura/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	syncH *handler.SyncHandler,
	fileH *handler.FileHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// All pipeline routes require a valid operator token
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Sync routes
	sync := protected.Group("/sync")
	sync.POST("/:category", middleware.RequireRole(domain.RoleAdmin, domain.RoleMember), syncH.Trigger)
	sync.GET("/:category/status", syncH.Status)

	// Indexed file routes
	files := protected.Group("/files")
	files.GET("", fileH.List)
	files.GET("/:id/archive-url", fileH.ArchiveURL)
	files.POST("/:id/scan", fileH.Scan)
	files.POST("/:id/accept", fileH.Accept)

	return r
}
