// @title StudyGeni API
// @version 1.0
// @description Generates study materials (summary, flashcards, quiz) from text, topics or uploaded documents.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studygeni/internal/adapter"
	"studygeni/internal/adapter/llm"
	"studygeni/internal/adapter/mailer"
	"studygeni/internal/cache"
	"studygeni/internal/config"
	"studygeni/internal/domain"
	"studygeni/internal/handler"
	"studygeni/internal/logger"
	"studygeni/internal/middleware"
	"studygeni/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Material cache is optional: the service degrades to plain generation
	// when Redis is disabled or unreachable at startup.
	var materialCache domain.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		materialCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis disabled, material cache inactive")
	}

	// Generator factory: a request may override the API key, so generators
	// are built per resolved key rather than once at startup.
	generatorFactory := func(ctx context.Context, apiKey string) (domain.TextGenerator, error) {
		return llm.NewGeminiGenerator(ctx, apiKey, cfg.Gemini, cfg.Retry)
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	appLogger.Info("SMTP mailer initialized", zap.String("host", cfg.SMTP.Host))

	studyService := service.NewStudyService(generatorFactory, materialCache, cfg)
	feedbackService := service.NewFeedbackService(smtpMailer)

	studyHandler := handler.NewStudyHandler(studyService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	healthHandler := handler.NewHealthHandler(materialCache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", healthHandler.Health)

	apiGroup := app.Group("/api")
	apiGroup.Post("/generate", studyHandler.Generate)
	apiGroup.Post("/process-file-upload", studyHandler.ProcessFileUpload)
	apiGroup.Post("/send-feedback", feedbackHandler.SendFeedback)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
