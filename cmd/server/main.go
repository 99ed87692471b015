package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/edukit/classroom-backend/internal/authz"
	"github.com/edukit/classroom-backend/internal/config"
	"github.com/edukit/classroom-backend/internal/database"
	"github.com/edukit/classroom-backend/internal/handler"
	"github.com/edukit/classroom-backend/internal/logger"
	"github.com/edukit/classroom-backend/internal/repository"
	"github.com/edukit/classroom-backend/internal/router"
	"github.com/edukit/classroom-backend/internal/service"
	"github.com/edukit/classroom-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Classroom Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	lectureRepo := repository.NewLectureRepository(pool)
	hometaskRepo := repository.NewHometaskRepository(pool)
	homeworkRepo := repository.NewHomeworkRepository(pool)
	markRepo := repository.NewMarkRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	// ─── Authorization Engine ──────────────────────────────────────────
	authzStore := repository.NewAuthzStore(pool)
	engine := authz.NewEngine(authzStore)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo, authService)
	courseService := service.NewCourseService(courseRepo, engine)
	lectureService := service.NewLectureService(lectureRepo, engine)
	hometaskService := service.NewHometaskService(hometaskRepo, engine)
	homeworkService := service.NewHomeworkService(homeworkRepo, engine)
	markService := service.NewMarkService(markRepo, commentRepo, engine)
	commentService := service.NewCommentService(commentRepo, engine, rdb, log)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(authService, userService),
		Course:   handler.NewCourseHandler(courseService),
		Lecture:  handler.NewLectureHandler(lectureService, mediaService),
		Hometask: handler.NewHometaskHandler(hometaskService),
		Homework: handler.NewHomeworkHandler(homeworkService),
		Mark:     handler.NewMarkHandler(markService),
		Comment:  handler.NewCommentHandler(commentService),
		Stream:   handler.NewStreamHandler(rdb, markService, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
