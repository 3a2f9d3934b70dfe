package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/zenstudio/yoga-api/docs"
	"github.com/zenstudio/yoga-api/internal/api/handler"
	"github.com/zenstudio/yoga-api/internal/api/middleware"
	"github.com/zenstudio/yoga-api/internal/core/ports"
	"github.com/zenstudio/yoga-api/internal/core/service"
	mongodb "github.com/zenstudio/yoga-api/internal/infrastructure/db/mongo"
	redisdb "github.com/zenstudio/yoga-api/internal/infrastructure/db/redis"
)

// Deps carries the externally constructed collaborators the router wires
// into handlers. TokenTTL-configured token service and audit recorder are
// built by the caller so tests and main can substitute them.
type Deps struct {
	Mongo    *mongo.Database
	Redis    *redis.Client
	Tokens   ports.TokenService
	Audit    ports.AuditRecorder
	AuditLog ports.AuditRepository
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("yoga"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	teacherRepo := mongodb.NewTeacherRepository(deps.Mongo)
	sessionRepo := mongodb.NewSessionRepository(deps.Mongo)
	limiter := redisdb.NewLoginLimiter(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.Tokens, limiter, deps.Audit, deps.Log)
	userService := service.NewUserService(userRepo, deps.Audit)
	teacherService := service.NewTeacherService(teacherRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teacherHandler := handler.NewTeacherHandler(teacherService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	auditHandler := handler.NewAuditHandler(deps.AuditLog)

	// --- API routes ---
	// The auth filter runs on every /api route and never rejects by itself;
	// Require(...) decides per route.
	apiGroup := e.Group("/api", middleware.Authenticate(deps.Tokens, userRepo, deps.Log))

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	authed := middleware.Require(middleware.Authenticated())
	admin := middleware.Require(middleware.Admin())

	apiGroup.GET("/session", sessionHandler.List, authed)
	apiGroup.GET("/session/:id", sessionHandler.Get, authed)
	apiGroup.POST("/session", sessionHandler.Create, admin)
	apiGroup.PUT("/session/:id", sessionHandler.Update, admin)
	apiGroup.DELETE("/session/:id", sessionHandler.Delete, admin)
	apiGroup.POST("/session/:id/participate/:userId", sessionHandler.Participate, authed)
	apiGroup.DELETE("/session/:id/participate/:userId", sessionHandler.NoLongerParticipate, authed)

	apiGroup.GET("/teacher", teacherHandler.List, authed)
	apiGroup.GET("/teacher/:id", teacherHandler.Get, authed)
	apiGroup.POST("/teacher", teacherHandler.Create, admin)
	apiGroup.PUT("/teacher/:id", teacherHandler.Update, admin)
	apiGroup.DELETE("/teacher/:id", teacherHandler.Delete, admin)

	apiGroup.GET("/user/:id", userHandler.Get, authed)
	apiGroup.DELETE("/user/:id", userHandler.Delete, authed)

	apiGroup.GET("/admin/audit", auditHandler.List, admin)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
