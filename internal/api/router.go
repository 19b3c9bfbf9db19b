package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/api/handler"
	"github.com/freelance-directory/api/internal/api/middleware"
	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
	"github.com/freelance-directory/api/internal/pkg/requestid"
)

// Dependencies is everything the router needs to serve the directory API.
type Dependencies struct {
	Users       ports.UserService
	Freelancers ports.FreelancerService
	Skills      ports.SkillService
	Tokens      ports.TokenVerifier
	Readiness   map[string]handler.ReadinessCheck
	Log         zerolog.Logger

	// Registry receives the HTTP metrics and backs /metrics. Nil uses the
	// Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	metricsConfig := echoprometheus.MiddlewareConfig{
		Subsystem:                 "directory",
		DoNotUseRequestPathFor404: true,
		StatusCodeResolver:        statusCode,
	}
	handlerConfig := echoprometheus.HandlerConfig{}
	if deps.Registry != nil {
		metricsConfig.Registerer = deps.Registry
		handlerConfig.Gatherer = deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			c.SetRequest(c.Request().WithContext(requestid.With(c.Request().Context(), id)))
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users)
	authHandler := handler.NewAuthHandler(deps.Users)
	freelancerHandler := handler.NewFreelancerHandler(deps.Freelancers)
	skillHandler := handler.NewSkillHandler(deps.Skills)
	healthHandler := handler.NewHealthHandler(deps.Readiness)

	authenticate := middleware.Authenticate(deps.Tokens)
	requireAdmin := middleware.RequireAdmin()

	// --- Public routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerConfig))

	v := e.Group("/api")

	users := v.Group("/users")
	users.POST("", userHandler.Register)
	users.GET("/me", userHandler.Me, authenticate)
	users.DELETE("/:id", userHandler.Delete, authenticate, requireAdmin)

	v.POST("/auth", authHandler.Login)

	freelancers := v.Group("/freelancers", authenticate)
	freelancers.GET("", freelancerHandler.List)
	freelancers.GET("/:id", freelancerHandler.Get)
	freelancers.POST("", freelancerHandler.Create, middleware.RequireRole(domain.RoleFreelancer))
	freelancers.PUT("/:id", freelancerHandler.Update)
	freelancers.DELETE("/:id", freelancerHandler.Delete)

	skills := v.Group("/skills")
	skills.GET("", skillHandler.List)
	skills.GET("/:id", skillHandler.Get)
	skills.POST("", skillHandler.Create, authenticate)
	skills.PUT("/:id", skillHandler.Rename, authenticate)
	skills.DELETE("/:id", skillHandler.Delete, authenticate, requireAdmin)

	return e
}
