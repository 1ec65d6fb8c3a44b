package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"alfredoptarigan/student-profile-analyzer/internal/config"
	"alfredoptarigan/student-profile-analyzer/internal/handlers"
	"alfredoptarigan/student-profile-analyzer/internal/logger"
	"alfredoptarigan/student-profile-analyzer/internal/repositories"
	"alfredoptarigan/student-profile-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	logger.Log.Info("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	var runRepo repositories.AnalysisRunRepository
	if db != nil {
		runRepo = repositories.NewAnalysisRunRepository(db)
		logger.Log.Info("✅ Repositories initialized successfully")
	}

	// Initialize services
	resultStore := services.NewResultStore(cfg.Storage.ResultsPath)
	if err := resultStore.EnsureResultsDir(); err != nil {
		logger.Log.Fatalf("❌ Failed to create results directory: %v", err)
	}

	gateway, err := services.NewLLMGateway(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatalf("❌ Failed to initialize LLM gateway: %v", err)
	}
	logger.Log.Infof("✅ LLM gateway initialized (%s)", gateway.Endpoint())

	// Initialize worker
	worker := services.NewWorker(cfg.Worker.Concurrency, cfg.Worker.QueueSize)
	worker.Start()

	analyzerService := services.NewAnalyzerService(
		gateway,
		resultStore,
		runRepo,
		worker,
		services.AnalyzerOptions{
			ClassifyMaxTokens:  cfg.LLM.ClassifyMaxTokens,
			RecommendMaxTokens: cfg.LLM.RecommendMaxTokens,
			AnalysisVersion:    cfg.Storage.AnalysisVersion,
		},
	)
	logger.Log.Info("✅ Analyzer service initialized")

	// Initialize Handlers
	h := handlers.Handlers{
		Analyze: handlers.NewAnalyzeHandler(analyzerService),
		Result:  handlers.NewResultHandler(resultStore, runRepo),
		Profile: handlers.NewProfileHandler(services.NewProfileSummarizer()),
	}
	logger.Log.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Student Profile Analysis API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     logger.Output(),
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.RegisterRoutes(app, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Log.Info("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			logger.Log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		logger.Log.Fatalf("❌ Failed to start server: %v", err)
	}

	worker.Stop()
}
