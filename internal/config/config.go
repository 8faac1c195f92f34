package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	HTTPAddr string
	LogLevel string

	// Database
	DatabaseURL string

	// S3/Storage
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	S3PublicURL string

	// Gemini API
	GeminiAPIKey      string
	GeminiAPIEndpoint string // if set, overrides the default Gemini API base URL
	GeminiModelImage  string // image generation, e.g. gemini-3-pro-image-preview
	GeminiModelCoach  string // coach text fallback, e.g. gemini-2.5-flash-lite

	// Pexels (optional; sourcing degrades to empty results without it)
	PexelsAPIKey string

	// Kafka (optional; pipeline events are skipped when no brokers are set)
	KafkaBrokers       []string
	KafkaTopicPipeline string

	// Pipeline
	DefaultSourcedCount   int
	DefaultGeneratedCount int
	ExternalCallTimeout   time.Duration // per collaborator call (sourcing, generation, fetch)

	// Coach
	CoachLLMEnabled bool // when true, the general branch may consult Gemini

	// Admin
	AdminAPIKeyHash string // bcrypt hash; empty disables the admin guard
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		S3Endpoint:  getEnv("S3_ENDPOINT", "http://localhost:9000"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "artwork"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3UseSSL:    getEnvBool("S3_USE_SSL", false),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiAPIEndpoint: getEnv("GEMINI_API_ENDPOINT", ""),
		GeminiModelImage:  getEnv("GEMINI_MODEL_IMAGE", "gemini-3-pro-image-preview"),
		GeminiModelCoach:  getEnv("GEMINI_MODEL_COACH", "gemini-2.5-flash-lite"),

		PexelsAPIKey: getEnv("PEXELS_API_KEY", ""),

		KafkaBrokers:       getEnvList("KAFKA_BROKERS"),
		KafkaTopicPipeline: getEnv("KAFKA_TOPIC_PIPELINE", "artworks.pipeline.v1"),

		DefaultSourcedCount:   getEnvInt("DEFAULT_SOURCED_COUNT", 5),
		DefaultGeneratedCount: getEnvInt("DEFAULT_GENERATED_COUNT", 5),
		ExternalCallTimeout:   getEnvDuration("EXTERNAL_CALL_TIMEOUT", 45*time.Second),

		CoachLLMEnabled: getEnvBool("COACH_LLM_ENABLED", false),

		AdminAPIKeyHash: getEnv("ADMIN_API_KEY_HASH", ""),
	}
}

// Validate checks that required credentials are present. Called once at startup.
// The Pexels key is deliberately not checked: sourcing degrades to empty
// results without it.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.S3AccessKey == "" || c.S3SecretKey == "" {
		return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY are required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated env var; unset or empty yields nil.
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
