package main

import (
	"context"
	"fmt"
	"os"
	"time"

	redisclient "github.com/yungbote/studyplanner-backend/internal/clients/redis"
	"github.com/yungbote/studyplanner-backend/internal/config"
	"github.com/yungbote/studyplanner-backend/internal/db"
	"github.com/yungbote/studyplanner-backend/internal/handlers"
	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/middleware"
	"github.com/yungbote/studyplanner-backend/internal/observability"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/server"
	"github.com/yungbote/studyplanner-backend/internal/services"
	"github.com/yungbote/studyplanner-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	configPath := utils.GetEnv("CONFIG_PATH", "config.yaml", log)
	cfg, err := config.Load(configPath, log)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Tracing
	shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "studyplanner",
		Environment: cfg.Server.Mode,
	})
	if shutdownOtel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				log.Warn("Otel shutdown failed", "error", err)
			}
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(cfg.Postgres, log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis cache (optional)
	var cache redisclient.Cache
	if cfg.Redis.Addr != "" {
		cache, err = redisclient.NewCache(cfg.Redis.Addr, log)
		if err != nil {
			log.Warn("Redis init failed, analytics caching disabled", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	} else {
		log.Info("No REDIS_ADDR configured, analytics caching disabled")
	}

	// AI client (optional; schedule generation degrades without it)
	var aiClient services.AIClient
	aiClient, err = services.NewAIClient(cfg.AI, log)
	if err != nil {
		log.Warn("AI client init failed, sequence estimation disabled", "error", err)
		aiClient = nil
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	courseRepo := repos.NewCourseRepo(thePG, log)
	topicRepo := repos.NewTopicRepo(thePG, log)
	subtopicRepo := repos.NewSubtopicRepo(thePG, log)
	studyPlanRepo := repos.NewStudyPlanRepo(thePG, log)
	studyLogRepo := repos.NewStudyLogRepo(thePG, log)
	quizRepo := repos.NewQuizRepo(thePG, log)
	quizAttemptRepo := repos.NewQuizAttemptRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(
		thePG, log, userRepo, userTokenRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenTTL)*time.Second,
		time.Duration(cfg.Auth.RefreshTokenTTL)*time.Second,
	)
	sequencerService := services.NewSequencerService(log, aiClient)
	courseService := services.NewCourseService(thePG, log, courseRepo)
	topicService := services.NewTopicService(thePG, log, courseRepo, topicRepo, subtopicRepo, aiClient)
	studyPlanService := services.NewStudyPlanService(thePG, log, studyPlanRepo, courseRepo)
	studyLogService := services.NewStudyLogService(thePG, log, studyLogRepo, courseRepo, topicRepo, cache)
	scheduleService := services.NewScheduleService(thePG, log, topicRepo, subtopicRepo, studyPlanRepo, sequencerService)
	analyticsService := services.NewAnalyticsService(thePG, log, studyLogRepo, studyPlanRepo, quizAttemptRepo, cache)
	quizAttemptService := services.NewQuizAttemptService(thePG, log, quizRepo, quizAttemptRepo, cache)

	// Handlers
	log.Info("Setting up Handlers from main...")
	healthcheckHandler := handlers.NewHealthcheckHandler()
	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(log, courseService)
	topicHandler := handlers.NewTopicHandler(log, topicService)
	studyPlanHandler := handlers.NewStudyPlanHandler(log, studyPlanService)
	studyLogHandler := handlers.NewStudyLogHandler(log, studyLogService)
	scheduleHandler := handlers.NewScheduleHandler(log, scheduleService)
	analyticsHandler := handlers.NewAnalyticsHandler(log, analyticsService)
	quizAttemptHandler := handlers.NewQuizAttemptHandler(log, quizAttemptService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		HealthcheckHandler: healthcheckHandler,
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		CourseHandler:      courseHandler,
		TopicHandler:       topicHandler,
		StudyPlanHandler:   studyPlanHandler,
		StudyLogHandler:    studyLogHandler,
		ScheduleHandler:    scheduleHandler,
		AnalyticsHandler:   analyticsHandler,
		QuizAttemptHandler: quizAttemptHandler,
		AllowedOrigins:     cfg.Server.CORSOrigins,
	})

	addr := ":" + cfg.Server.Port
	log.Info("Starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
