package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/pagination"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

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

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
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

	db, err := database.NewSQLXPostgresDB(cfg.DB.DSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Connected to database", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.DBName))

	questionRepository := repository.NewQuestionRepository(db)
	categoryRepository := repository.NewCategoryRepository(db)

	paginator := pagination.New(cfg.App.QuestionsPerPage)
	triviaService := service.NewTriviaService(questionRepository, categoryRepository, paginator)
	triviaHandler := handler.NewTriviaHandler(triviaService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	triviaHandler.RegisterRoutes(app.Group("/api"))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
