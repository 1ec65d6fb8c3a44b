package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
)

type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	BodyLimit int
}

type LLMConfig struct {
	Provider           string
	BaseURL            string
	APIKey             string
	Model              string
	ClassifyMaxTokens  int
	RecommendMaxTokens int
	Timeout            time.Duration
	RateLimitRPM       int
	RateLimitBurst     int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	ResultsPath     string
	AnalysisVersion string
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
}

type LogConfig struct {
	Level string
	File  string
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8000"),
			Env:       getEnv("ENV", "development"),
			BodyLimit: getEnvAsInt("BODY_LIMIT", 4<<20),
		},
		LLM: LLMConfig{
			Provider:           getEnv("LLM_PROVIDER", ProviderOpenAI),
			BaseURL:            getEnv("LLM_BASE_URL", "http://localhost:1234/v1"),
			APIKey:             getEnv("LLM_API_KEY", ""),
			Model:              getEnv("LLM_MODEL", "local-model"),
			ClassifyMaxTokens:  getEnvAsInt("LLM_CLASSIFY_MAX_TOKENS", 100),
			RecommendMaxTokens: getEnvAsInt("LLM_RECOMMEND_MAX_TOKENS", 500),
			Timeout:            getEnvAsDuration("LLM_TIMEOUT", "60s"),
			RateLimitRPM:       getEnvAsInt("LLM_RATE_LIMIT_RPM", 0),
			RateLimitBurst:     getEnvAsInt("LLM_RATE_LIMIT_BURST", 4),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
		},
		Storage: StorageConfig{
			ResultsPath:     getEnv("RESULTS_PATH", "./analysis_results"),
			AnalysisVersion: getEnv("ANALYSIS_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", DriverSQLite),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "student_profile_analyzer"),
			SQLitePath: getEnv("SQLITE_PATH", "./data/analysis_runs.db"),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 4),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 100),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
