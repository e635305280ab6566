package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/idaccess/identity-service/internal/api/handler"
	"github.com/idaccess/identity-service/internal/api/middleware"
	"github.com/idaccess/identity-service/internal/core/domain"
	"github.com/idaccess/identity-service/internal/core/service"
	"github.com/idaccess/identity-service/internal/infrastructure/config"
	mongostore "github.com/idaccess/identity-service/internal/infrastructure/db/mongo"
	redisdb "github.com/idaccess/identity-service/internal/infrastructure/db/redis"
	"github.com/idaccess/identity-service/internal/infrastructure/hash"
	healthhandlers "github.com/idaccess/identity-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	hasher := hash.NewBcryptHasher(0)
	userStore := mongostore.NewUserStore(db, hasher)
	roleStore := redisdb.NewRoleCache(mongostore.NewRoleStore(db), rdb, log)

	issuer := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TokenTTL)
	userService := service.NewUserService(userStore, hasher, issuer, log)
	roleService := service.NewRoleService(roleStore, log)

	authHandler := handler.NewAuthHandler(userService, roleService)
	roleHandler := handler.NewRoleHandler(roleService, userService)
	userHandler := handler.NewUserHandler(userService, roleService)

	authRequired := middleware.Auth(cfg.JWT.Secret)
	adminOnly := middleware.RequireRole(domain.RoleAdministrator)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- User routes ---
	users := e.Group("/users", authRequired)
	users.GET("/:username/roles", userHandler.GetRoles)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Role administration ---
	roles := e.Group("/roles", authRequired, adminOnly)
	roles.POST("", roleHandler.CreateRole)
	roles.GET("/:name/users", roleHandler.ListUsers)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
