package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"careerlog-backend/auth"
	"careerlog-backend/config"
	"careerlog-backend/handlers"
	"careerlog-backend/repository"
	"careerlog-backend/service"
	"careerlog-backend/storage"
)

func main() {
	// Load .env from the current directory or the project root; absence is
	// fine when the environment is already populated.
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../../.env")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()

	db := client.Database(cfg.MongoDBName)

	store, err := storage.NewStorage(cfg, db)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize storage")
	}
	log.WithField("type", cfg.StorageType).Info("Storage initialized")

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTExpiryHours)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize token manager")
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	resumeRepo := repository.NewResumeRepository(db)

	resumeService := service.NewResumeService(resumeRepo, store, log)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo, resumeService, log)
	alertService := service.NewAlertService(alertRepo)
	analyticsService := service.NewAnalyticsService(jobRepo)

	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	alertHandler := handlers.NewAlertHandler(alertService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		protected := api.Group("")
		protected.Use(auth.RequireAuth(tokens))
		{
			protected.GET("/users/:id", userHandler.Get)
			protected.PUT("/users/:id", userHandler.Update)
			protected.DELETE("/users/:id", userHandler.Delete)

			protected.POST("/jobs", jobHandler.Create)
			protected.GET("/jobs", jobHandler.List)
			protected.PUT("/jobs/:id", jobHandler.Update)
			protected.DELETE("/jobs/:id", jobHandler.Delete)

			protected.POST("/alerts", alertHandler.Create)
			protected.GET("/alerts", alertHandler.List)
			protected.PUT("/alerts/:id", alertHandler.Update)
			protected.DELETE("/alerts/:id", alertHandler.Delete)

			protected.GET("/resumes/:id", resumeHandler.Download)
			protected.DELETE("/resumes/:id", resumeHandler.Delete)

			protected.GET("/analytics/status-counts", analyticsHandler.StatusCounts)
		}
	}

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server exited")
	}
}

// corsMiddleware allows the desktop client origin to call the API and read
// the filename on resume downloads.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
