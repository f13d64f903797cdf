package routes

import (
	"net/http"
	"strings"

	"github.com/formgate/formgate/internal/api/dto/common"
	"github.com/formgate/formgate/internal/api/middleware"
	"github.com/formgate/formgate/internal/config"
	"github.com/formgate/formgate/internal/logging"

	"github.com/gin-gonic/gin"
)

// maxBodySize caps contact submission bodies. The message field alone is
// limited to 5000 characters, so 64 KiB leaves ample headroom.
const maxBodySize = 64 << 10

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.MsgMethodNotAllowed))
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.MsgNotFound))
	})

	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupContactRoutes(api, h.Contact, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.LogRequests))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PreserveRequestBody(maxBodySize))
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	}))
	router.Use(handleTrailingSlash())
}

// handleTrailingSlash removes the need for strict trailing slash matching
func handleTrailingSlash() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			c.Request.URL.Path = strings.TrimSuffix(path, "/")
		}

		c.Next()
	}
}
