package routes

import (
	"github.com/formgate/formgate/internal/api/handlers"
	"github.com/formgate/formgate/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(api *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint with a tighter rate limit than the global one:
	// RPS=1 refills roughly one request per second, Burst=5 allows a short
	// burst before throttling kicks in.
	api.POST("/contact",
		middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			RPS:   1,
			Burst: 5,
		}),
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
