package main

import (
	"log"
	"os"

	"quiz-platform-backend/internal/api/routes"
	"quiz-platform-backend/internal/cache"
	"quiz-platform-backend/internal/config"
	"quiz-platform-backend/internal/database"
	"quiz-platform-backend/internal/repository"
	"quiz-platform-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Quiz Platform Backend API
//	@version		1.0
//	@description	Backend API for a multi-tenant quiz platform: company membership, quiz authoring, scoring and analytics.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	redisClient, err := cache.NewRedis(cache.Options{
		Address:  cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to redis:", err)
	}

	// Daily reminder sweep
	reminder := scheduler.NewReminderJob(
		repository.NewUserRepository(db),
		repository.NewResultRepository(db),
		repository.NewQuizRepository(db),
		repository.NewNotificationRepository(db),
		cfg.ReminderSchedule,
	)
	if err := reminder.Start(); err != nil {
		logrus.Fatal("Failed to start reminder job:", err)
	}
	defer reminder.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, redisClient, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
