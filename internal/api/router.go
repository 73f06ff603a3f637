package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agencyhub/agency-api/internal/api/handler"
	"github.com/agencyhub/agency-api/internal/api/middleware"
	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/policy"
	"github.com/agencyhub/agency-api/internal/core/service"
	"github.com/agencyhub/agency-api/internal/infrastructure/config"
	agencymongo "github.com/agencyhub/agency-api/internal/infrastructure/db/mongo"
	agencyredis "github.com/agencyhub/agency-api/internal/infrastructure/db/redis"
	"github.com/agencyhub/agency-api/internal/infrastructure/queue"
)

// NewRouter assembles the full application: repositories, the permission
// catalog, services, the notification dispatcher, and all HTTP routes.
// The dispatcher workers run until ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agency"))

	// --- Repositories ---
	userRepo := agencymongo.NewUserRepository(db)
	taskRepo := agencymongo.NewTaskRepository(db)
	clientRepo := agencymongo.NewClientRepository(db)
	activityRepo := agencymongo.NewActivityRepository(db)
	notificationRepo := agencymongo.NewNotificationRepository(db)
	settingsStore := agencymongo.NewSettingsStore(db)

	// --- Policy ---
	catalog := service.LoadRoleCatalog(ctx, settingsStore, log)
	authorizer := policy.NewAuthorizer(catalog)
	workflow := domain.NewWorkflow()

	// --- Notification pipeline ---
	throttle := agencyredis.NewNotificationThrottle(rdb, cfg.NotificationThrottleTTL)
	notificationSvc := service.NewNotificationService(notificationRepo, throttle, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationSvc, log)
	dispatcher.Start(ctx)

	// --- Services ---
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	taskSvc := service.NewTaskService(taskRepo, clientRepo, userRepo, activityRepo, dispatcher, authorizer, workflow, log)
	clientSvc := service.NewClientService(clientRepo, taskRepo, userRepo, authorizer, log)
	userSvc := service.NewUserService(userRepo, activityRepo, authorizer, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	clientHandler := handler.NewClientHandler(clientSvc)
	userHandler := handler.NewUserHandler(userSvc)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)

	authn := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Task routes ---
	tasks := e.Group("/v1/tasks", authn)
	tasks.POST("", taskHandler.Create, middleware.Permission(authorizer, domain.ActionCreateTask))
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.GET("/:id/activity", taskHandler.Activity)
	tasks.PATCH("/:id/status", taskHandler.ChangeStatus)
	tasks.PATCH("/:id/assignee", taskHandler.Reassign)

	// --- Client routes ---
	clients := e.Group("/v1/clients", authn)
	clients.POST("", clientHandler.Create, middleware.Permission(authorizer, domain.ActionCreateClient))
	clients.GET("", clientHandler.List)

	// --- Team routes (owner and admin tiers only) ---
	users := e.Group("/v1/users", authn, middleware.RequireTier(domain.TierOwner, domain.TierAdmin))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.PATCH("/:id/role", userHandler.ChangeRole)
	users.DELETE("/:id", userHandler.Deactivate)

	// --- Notification routes ---
	e.GET("/v1/notifications", notificationHandler.List, authn)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
