package router

import (
	"github.com/gin-gonic/gin"

	"invoicematch/internal/config"
	"invoicematch/internal/handler"
	"invoicematch/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.CORSConfig,
	reconcileH *handler.ReconcileHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/", healthH.Root)
	r.GET("/healthz", healthH.Liveness)
	r.POST("/reconcile", reconcileH.Reconcile)

	return r
}
