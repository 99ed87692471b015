package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edukit/classroom-backend/internal/config"
	"github.com/edukit/classroom-backend/internal/handler"
	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/response"
	"github.com/edukit/classroom-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Course   *handler.CourseHandler
	Lecture  *handler.LectureHandler
	Hometask *handler.HometaskHandler
	Homework *handler.HomeworkHandler
	Mark     *handler.MarkHandler
	Comment  *handler.CommentHandler
	Stream   *handler.StreamHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded presentations statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Authenticated API (JWT + Single Device) ────────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireAuth(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		api.POST("/logout", handlers.Auth.Logout)
		api.GET("/me", handlers.Auth.GetProfile)
		api.GET("/users", handlers.Auth.ListUsers)

		// Courses
		api.GET("/courses", handlers.Course.List)
		api.POST("/courses", handlers.Course.Create)
		api.GET("/courses/:course_id", handlers.Course.Get)
		api.PUT("/courses/:course_id", handlers.Course.Update)
		api.DELETE("/courses/:course_id", handlers.Course.Delete)

		// Lectures, nested under a course
		lectures := api.Group("/courses/:course_id/lectures")
		{
			lectures.GET("", handlers.Lecture.List)
			lectures.POST("", handlers.Lecture.Create)
			lectures.GET("/:lecture_id", handlers.Lecture.Get)
			lectures.PUT("/:lecture_id", handlers.Lecture.Update)
			lectures.DELETE("/:lecture_id", handlers.Lecture.Delete)
			lectures.POST("/:lecture_id/presentation", handlers.Lecture.UploadPresentation)

			// Hometasks, nested under a lecture
			hometasks := lectures.Group("/:lecture_id/hometasks")
			{
				hometasks.GET("", handlers.Hometask.List)
				hometasks.POST("", handlers.Hometask.Create)
				hometasks.GET("/:hometask_id", handlers.Hometask.Get)
				hometasks.PUT("/:hometask_id", handlers.Hometask.Update)
				hometasks.DELETE("/:hometask_id", handlers.Hometask.Delete)

				// Submissions, nested under a hometask
				homeworks := hometasks.Group("/:hometask_id/completed_homeworks")
				{
					homeworks.GET("", handlers.Homework.List)
					homeworks.POST("", handlers.Homework.Submit)
					homeworks.GET("/:homework_id", handlers.Homework.Get)
					homeworks.PUT("/:homework_id", handlers.Homework.Update)
					homeworks.DELETE("/:homework_id", handlers.Homework.Delete)

					// A submission's mark (at most one)
					homeworks.GET("/:homework_id/marks", handlers.Mark.ListByHomework)
					homeworks.POST("/:homework_id/marks", handlers.Mark.Create)
				}
			}
		}

		// Marks addressed top-level, carrying the comment thread
		marks := api.Group("/marks")
		{
			marks.GET("/:mark_id", handlers.Mark.Get)
			marks.PUT("/:mark_id", handlers.Mark.Update)

			marks.GET("/:mark_id/comments", handlers.Comment.List)
			marks.POST("/:mark_id/comments", handlers.Comment.Create)
			marks.GET("/:mark_id/comments/:comment_id", handlers.Comment.Get)

			// Comments are append-only. The routes exist so clients get
			// a 405 instead of a confusing 404.
			marks.PUT("/:mark_id/comments/:comment_id", handlers.Comment.RejectMutation)
			marks.DELETE("/:mark_id/comments/:comment_id", handlers.Comment.RejectMutation)
		}
	}

	// ─── 3. WebSocket Group (Token via Query Param) ────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(
		middleware.RequireWSAuth(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		ws.GET("/marks/:mark_id/stream", handlers.Stream.CommentStream)
	}

	return router
}
