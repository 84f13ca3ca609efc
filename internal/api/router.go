package api

import (
	"veoprompt-backend/config"
	adminUser "veoprompt-backend/internal/api/v1/admin/user"
	"veoprompt-backend/internal/api/v1/auth"
	"veoprompt-backend/internal/api/v1/generation"
	"veoprompt-backend/internal/api/v1/session"
	"veoprompt-backend/internal/api/v1/templates"
	"veoprompt-backend/internal/database"
	"veoprompt-backend/internal/middleware"
	"veoprompt-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	if err := database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	// Service wiring. Everything takes explicit handles so tests can build
	// fresh instances against their own fixtures.
	users := services.NewUserService(db, database.RedisClient)
	denylist := services.NewDenylistService(database.RedisClient)
	authSvc := services.NewAuthService(db, denylist, cfg.JWTSecret)
	gemini := services.NewGeminiClient(cfg)
	genSvc := services.NewGenerationService(gemini)
	storyboardSvc := services.NewStoryboardService(gemini)
	quota := services.NewQuotaService(db, cfg.FreeDailyLimit)
	formState := services.NewFormStateService(db)
	attempts := services.NewAttemptTracker()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret, users, denylist)
	adminRequired := middleware.AdminAuthMiddleware(cfg.JWTSecret, users, denylist)

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, auth.NewHandler(authSvc), authRequired)

		authorized := v1.Group("/")
		authorized.Use(authRequired)
		{
			templates.RegisterRoutes(authorized, templates.NewHandler())
			session.RegisterRoutes(authorized, session.NewHandler(formState))
			generation.RegisterRoutes(authorized, generation.NewHandler(genSvc, storyboardSvc, quota, formState, attempts))
		}

		admin := v1.Group("/admin")
		admin.Use(adminRequired)
		{
			adminUser.RegisterRoutes(admin, adminUser.NewHandler(users))
		}
	}

	return router, nil
}
