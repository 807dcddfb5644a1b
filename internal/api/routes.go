package api

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/metrics"
	"alcyxob/fitness-recommender/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the HTTP layer calls into.
type Services struct {
	Auth           service.AuthService
	Profile        service.ProfileService
	Exercise       service.ExerciseService
	WorkoutLog     service.WorkoutLogService
	Recommendation service.RecommendationService
}

// SetupRoutes registers every endpoint on router. logWindowDays bounds the
// ?days= parameter of GET /logs.
func SetupRoutes(router *gin.Engine, jwtSecret string, logWindowDays int, svc Services, m *metrics.Manager, log *logger.Logger) {
	authHandler := NewAuthHandler(svc.Auth, svc.Profile, log)
	exerciseHandler := NewExerciseHandler(svc.Exercise, log)
	logHandler := NewWorkoutLogHandler(svc.WorkoutLog, logWindowDays, log)
	recHandler := NewRecommendationHandler(svc.Recommendation, m, log)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/me", authHandler.Me)
		protected.PUT("/me/profile", authHandler.UpdateProfile)
		protected.PUT("/users/:id/role", RoleMiddleware(domain.RoleAdmin), authHandler.SetRole)

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)

			mediaGroup := exerciseGroup.Group("/:id/media")
			mediaGroup.Use(RoleMiddleware(domain.RoleTrainer, domain.RoleAdmin))
			{
				mediaGroup.POST("/upload-url", exerciseHandler.RequestMediaUpload)
				mediaGroup.PUT("", exerciseHandler.ConfirmMediaUpload)
			}
		}

		logGroup := protected.Group("/logs")
		{
			logGroup.POST("", logHandler.CreateLog)
			logGroup.GET("", logHandler.ListLogs)
			logGroup.DELETE("/:id", logHandler.DeleteLog)
		}

		protected.GET("/recommendations/today", recHandler.Today)
	}
}

// NewRouter builds a gin engine with recovery, CORS, metrics and request
// logging.
func NewRouter(mode string, corsOrigins []string, m *metrics.Manager, log *logger.Logger) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), CORS(corsOrigins), RequestMetrics(m), RequestLogger(log))
	return router
}
