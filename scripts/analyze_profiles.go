package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"alfredoptarigan/student-profile-analyzer/internal/config"
	"alfredoptarigan/student-profile-analyzer/internal/logger"
	"alfredoptarigan/student-profile-analyzer/internal/models"
	"alfredoptarigan/student-profile-analyzer/internal/services"
)

// Analyzes every student in a {"students": [...]} file without the HTTP server.
//
//	go run ./scripts [path/to/studentProfile.json]
func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	path := "data/studentProfile.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	logger.Log.Infof("🚀 Starting profile analysis from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Fatalf("❌ Failed to read %s: %v", path, err)
	}

	var req models.AnalyzeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.Log.Fatalf("❌ Failed to load student profile data: %v", err)
	}
	if len(req.Students) == 0 {
		logger.Log.Fatal("❌ No students found in profile data")
	}
	for i := range req.Students {
		req.Students[i].ApplyDefaults()
	}

	ctx := context.Background()

	gateway, err := services.NewLLMGateway(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("❌ Failed to initialize LLM gateway: %v", err)
	}

	worker := services.NewWorker(cfg.Worker.Concurrency, cfg.Worker.QueueSize)
	worker.Start()
	defer worker.Stop()

	analyzer := services.NewAnalyzerService(
		gateway,
		services.NewResultStore(cfg.Storage.ResultsPath),
		nil,
		worker,
		services.AnalyzerOptions{
			ClassifyMaxTokens:  cfg.LLM.ClassifyMaxTokens,
			RecommendMaxTokens: cfg.LLM.RecommendMaxTokens,
			AnalysisVersion:    cfg.Storage.AnalysisVersion,
		},
	)

	batch := analyzer.AnalyzeBatch(ctx, req.Students)

	for _, result := range batch.Results {
		if !result.Succeeded() {
			fmt.Printf("Failed to classify profile for %s: %s\n\n", result.StudentName, result.Error)
			continue
		}

		fmt.Printf("Profile Classification for %s: %s\n", result.StudentName, result.Classification)
		fmt.Println("Recommended Tasks:")
		for _, rec := range result.Recommendations {
			fmt.Printf("- %s\n", rec)
		}
		fmt.Printf("Saved to: %s\n\n", result.SavedTo)
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("📊 Analysis completed: %d successful, %d failed\n", batch.Succeeded, batch.Failed)
}
