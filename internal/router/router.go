package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AlfonsoMarC/RogalikLessons/internal/config"
	"github.com/AlfonsoMarC/RogalikLessons/internal/handler"
	"github.com/AlfonsoMarC/RogalikLessons/internal/middleware"
	"github.com/AlfonsoMarC/RogalikLessons/internal/response"
	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Student *handler.StudentHandler
	Group   *handler.GroupHandler
	Lesson  *handler.LessonHandler
	Summary *handler.SummaryHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// The gate guards every route; public paths are classified inside it.
	router.Use(middleware.SessionGate(authService, log))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Login entry point the gate redirects to. The UI lives elsewhere; the
	// API client logs in through POST /api/v1/auth/login.
	router.GET("/login", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"login": "POST /api/v1/auth/login"})
	})

	// Rate limiter for the login route (10 attempts per minute per IP).
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── Auth Group (Public, Rate Limited Login) ───────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/me", handlers.Auth.Me)
	}

	// ─── Protected API (Session Gate) ──────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.GET("/students", handlers.Student.ListStudents)
		api.POST("/students", handlers.Student.CreateStudent)
		api.GET("/students/:id", handlers.Student.GetStudent)
		api.PUT("/students/:id", handlers.Student.UpdateStudent)
		api.DELETE("/students/:id", handlers.Student.DeleteStudent)

		api.GET("/groups", handlers.Group.ListGroups)
		api.POST("/groups", handlers.Group.CreateGroup)
		api.GET("/groups/:id", handlers.Group.GetGroup)
		api.PUT("/groups/:id", handlers.Group.UpdateGroup)
		api.DELETE("/groups/:id", handlers.Group.DeleteGroup)

		api.GET("/lessons", handlers.Lesson.ListLessons)
		api.POST("/lessons", handlers.Lesson.CreateLesson)
		api.GET("/lessons/:id", handlers.Lesson.GetLesson)
		api.PUT("/lessons/:id", handlers.Lesson.UpdateLesson)
		api.DELETE("/lessons/:id", handlers.Lesson.DeleteLesson)

		api.GET("/summary", handlers.Summary.MonthlySummary)
	}

	return router
}
