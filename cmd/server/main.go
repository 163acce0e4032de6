package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/config"
	"github.com/fadilmartias/lead-scorer/internal/domain/fiber/handler"
	"github.com/fadilmartias/lead-scorer/internal/middleware"
	"github.com/fadilmartias/lead-scorer/internal/repository"
	"github.com/fadilmartias/lead-scorer/internal/scoring"
	"github.com/fadilmartias/lead-scorer/internal/service"
	"github.com/fadilmartias/lead-scorer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	if err := config.InitLogger(appConfig); err != nil {
		log.Fatal(err)
	}
	defer zap.L().Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scoringConfig := config.LoadScoringConfig()
	uploadConfig := config.LoadUploadConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: int(uploadConfig.MaxBytes) + 64*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		ExposeHeaders: middleware.SessionHeader,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	repo, err := repository.Open(ctx, config.LoadStoreConfig())
	if err != nil {
		zap.L().Fatal("could not open session store", zap.Error(err))
	}
	defer repo.Close()

	completer, err := service.NewCompleter(ctx, scoringConfig)
	if err != nil {
		zap.L().Fatal("could not build AI completer", zap.Error(err))
	}

	policy, err := scoring.ParseFailurePolicy(scoringConfig.OnAIFailure)
	if err != nil {
		zap.L().Fatal("invalid ON_AI_FAILURE", zap.Error(err))
	}
	mode, err := scoring.ParseReasoningMode(scoringConfig.ReasoningMode)
	if err != nil {
		zap.L().Fatal("invalid REASONING_MODE", zap.Error(err))
	}
	orchestrator := scoring.NewOrchestrator(
		scoring.NewAIScorer(completer, scoringConfig.Timeout),
		scoring.OrchestratorConfig{
			Policy:        policy,
			ReasoningMode: mode,
			Concurrency:   scoringConfig.Concurrency,
		},
	)

	uc := usecase.NewScoringUsecase(repo, orchestrator)
	h := handler.NewScoringHandler(uc, uploadConfig)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Lead scoring service is running")
	})
	h.RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zap.L().Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zap.L().Error("shutdown failed", zap.Error(err))
		}
	}()

	zap.L().Info("server running",
		zap.String("port", appConfig.Port),
		zap.String("ai_provider", scoringConfig.Provider),
		zap.String("on_ai_failure", string(policy)),
		zap.String("reasoning_mode", string(mode)),
	)
	if err := app.Listen(appConfig.Port); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
