package server

import (
	"io"

	"github.com/automotiveconsulting/site-api/internal/api/handlers"
	"github.com/automotiveconsulting/site-api/internal/config"
	"github.com/automotiveconsulting/site-api/internal/middleware"
	"github.com/automotiveconsulting/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP server for the marketplace site API.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
}

// New wires services, handlers and routes. All collaborators are built
// once here from the read-only configuration.
func New(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logging is replaced by the application logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())

	captcha := service.NewCaptchaService(cfg.CaptchaProvider, cfg.CaptchaSecret())
	notifications := service.NewNotificationService(cfg.ContactFrom, cfg.ContactRecipients, cfg.ContactCC)
	sender := service.NewResendSender(cfg.ResendAPIKey)
	submissions := service.NewSubmissionService(captcha, notifications, sender, cfg.RequiredFields)
	vehicles := service.NewVehicleService()

	submissionHandler := handlers.NewSubmissionHandler(cfg, submissions)
	vehicleHandler := handlers.NewVehicleHandler(vehicles)
	healthHandler := handlers.NewHealthHandler()

	router.GET("/health", healthHandler.Check)

	api := router.Group("/api/v1")
	{
		// Public endpoint, rate limited: ~1 rps with bursts of 5
		api.POST("/contact/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			submissionHandler.Submit,
		)

		api.GET("/vehicles", vehicleHandler.List)
		api.GET("/vehicles/:id", vehicleHandler.Get)
	}

	return &Server{
		cfg:    cfg,
		router: router,
	}
}

// Start runs the server on the configured port. It blocks until the
// listener fails.
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
