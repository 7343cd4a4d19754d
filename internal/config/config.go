package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Chat     ChatConfig
	Docs     DocStoreConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "gemini" or "ollama"
	LLMModel          string
	GeminiApiKey      string
	CallTimeout       time.Duration
}

type ChatConfig struct {
	SessionTimeout time.Duration
	TopK           int
	MaxAttempts    int
	BaseDelay      time.Duration
	ChunkSize      int
	ChunkOverlap   int
	AnsweredTopic  string
}

type DocStoreConfig struct {
	Kind       string // "local" or "http"
	LocalDir   string
	BaseURL    string
	ListingTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "CourseAssist"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-1.5-flash"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			CallTimeout:       getEnvAsDuration("AI_CALL_TIMEOUT", 30*time.Second),
		},
		Chat: ChatConfig{
			SessionTimeout: getEnvAsDuration("CHAT_SESSION_TIMEOUT", 30*time.Minute),
			TopK:           getEnvAsInt("CHAT_TOP_K", 10),
			MaxAttempts:    getEnvAsInt("AI_MAX_ATTEMPTS", 5),
			BaseDelay:      getEnvAsDuration("AI_RETRY_BASE_DELAY", time.Second),
			ChunkSize:      getEnvAsInt("INGEST_CHUNK_SIZE", 1000),
			ChunkOverlap:   getEnvAsInt("INGEST_CHUNK_OVERLAP", 200),
			AnsweredTopic:  getEnv("ESCALATION_ANSWERED_TOPIC_NAME", "ESCALATION_ANSWERED"),
		},
		Docs: DocStoreConfig{
			Kind:       getEnv("DOCSTORE_KIND", "local"),
			LocalDir:   getEnv("DOCSTORE_LOCAL_DIR", "./documents"),
			BaseURL:    getEnv("DOCSTORE_BASE_URL", ""),
			ListingTTL: getEnvAsDuration("DOCSTORE_LISTING_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
