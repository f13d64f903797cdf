package server

import (
	"io"

	"github.com/formgate/formgate/internal/api/handlers"
	"github.com/formgate/formgate/internal/api/middleware"
	"github.com/formgate/formgate/internal/config"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/server/routes"
	"github.com/formgate/formgate/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	return &Server{
		router: gin.New(),
		cfg:    cfg,
	}
}

// Init wires middleware, handlers, and routes
func (s *Server) Init() error {
	routes.SetupGlobalMiddleware(s.router, s.cfg)

	validationMiddleware := middleware.NewValidationMiddleware()

	var sender service.EmailSender
	if s.cfg.ResendAPIKey != "" {
		sender = service.NewResendEmailService(s.cfg)
	} else {
		logging.GetLogger().Warn("RESEND_API_KEY not set, contact emails are disabled")
	}

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(s.cfg, validationMiddleware.Validate(), sender),
		Health:  handlers.NewHealthHandler(),
	}
	m := &routes.Middleware{
		Validation: validationMiddleware,
	}

	routes.Setup(s.router, h, m)
	return nil
}

// Start starts the server
func (s *Server) Start() error {
	logging.GetLogger().Info("Starting HTTP server on port %s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}
