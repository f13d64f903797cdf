package routes

import (
	"github.com/formgate/formgate/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures the liveness endpoint
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler) {
	router.GET("/healthz", health.Check)
}
