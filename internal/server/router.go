package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/studyplanner-backend/internal/handlers"
	"github.com/yungbote/studyplanner-backend/internal/middleware"
)

type RouterConfig struct {
	HealthcheckHandler *handlers.HealthcheckHandler
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	CourseHandler      *handlers.CourseHandler
	TopicHandler       *handlers.TopicHandler
	StudyPlanHandler   *handlers.StudyPlanHandler
	StudyLogHandler    *handlers.StudyLogHandler
	ScheduleHandler    *handlers.ScheduleHandler
	AnalyticsHandler   *handlers.AnalyticsHandler
	QuizAttemptHandler *handlers.QuizAttemptHandler
	AllowedOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("studyplanner"))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)
	router.POST("/api/register", cfg.AuthHandler.Register)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	api.POST("/refresh", cfg.AuthHandler.Refresh)
	api.POST("/logout", cfg.AuthHandler.Logout)

	api.POST("/courses", cfg.CourseHandler.Create)
	api.GET("/courses", cfg.CourseHandler.List)
	api.GET("/courses/:course_id", cfg.CourseHandler.Get)
	api.PATCH("/courses/:course_id", cfg.CourseHandler.Update)
	api.DELETE("/courses/:course_id", cfg.CourseHandler.Delete)

	api.POST("/courses/:course_id/topics", cfg.TopicHandler.Create)
	api.GET("/courses/:course_id/topics", cfg.TopicHandler.ListByCourse)
	api.GET("/topics/:topic_id", cfg.TopicHandler.Get)
	api.PATCH("/topics/:topic_id", cfg.TopicHandler.Update)
	api.DELETE("/topics/:topic_id", cfg.TopicHandler.Delete)

	api.GET("/topics/:topic_id/subtopics", cfg.TopicHandler.ListSubtopics)
	api.POST("/topics/:topic_id/subtopics", cfg.TopicHandler.CreateSubtopic)
	api.POST("/topics/:topic_id/subtopics/suggest", cfg.TopicHandler.SuggestSubtopics)
	api.PATCH("/subtopics/:subtopic_id", cfg.TopicHandler.SetSubtopicCompletion)
	api.DELETE("/subtopics/:subtopic_id", cfg.TopicHandler.DeleteSubtopic)

	api.POST("/study-plans", cfg.StudyPlanHandler.Create)
	api.GET("/study-plans", cfg.StudyPlanHandler.List)
	api.PATCH("/study-plans/:plan_id", cfg.StudyPlanHandler.Update)
	api.DELETE("/study-plans/:plan_id", cfg.StudyPlanHandler.Delete)

	api.POST("/study-logs", cfg.StudyLogHandler.Create)
	api.GET("/study-logs", cfg.StudyLogHandler.List)

	api.POST("/schedule/generate", cfg.ScheduleHandler.Generate)

	api.GET("/analytics/study-effectiveness", cfg.AnalyticsHandler.StudyEffectiveness)
	api.GET("/analytics/engagement", cfg.AnalyticsHandler.Engagement)
	api.GET("/analytics/weekly-progress", cfg.AnalyticsHandler.WeeklyProgress)

	api.POST("/quiz-attempts", cfg.QuizAttemptHandler.Record)
	api.GET("/quiz-attempts", cfg.QuizAttemptHandler.List)

	return router
}
