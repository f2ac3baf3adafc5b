package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Ebiethub/AI-image-chat/internal/category"
)

// Config holds every process-wide setting. It is built once at startup
// and passed by reference into each component's constructor; business
// logic never reads the environment directly.
type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	MaxRequestBodySize int64

	// Image tagging endpoint (Hugging Face style inference API).
	TaggingBaseURL string
	TaggingToken   string
	TaggingTimeout time.Duration
	MedicalModel   string
	GeneralModel   string
	ProductModel   string

	// Chat-completion backend (Groq, OpenAI-compatible).
	GroqAPIKey        string
	GroqBaseURL       string
	GroqModel         string
	GroqTemperature   float32
	GenerationTimeout time.Duration

	// Optional OCR enrichment.
	OCREnabled  bool
	OCRLanguage string

	// Optional Azure blob image source.
	AzureAccountName string
	AzureAccountKey  string
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

// TaggingModel returns the inference model identifier for a category.
func (c *Config) TaggingModel(cat category.Category) string {
	switch cat {
	case category.Medical:
		return c.MedicalModel
	case category.Product:
		return c.ProductModel
	default:
		return c.GeneralModel
	}
}

// AzureEnabled reports whether blob-hosted images can be resolved.
func (c *Config) AzureEnabled() bool {
	return c.AzureAccountName != "" && c.AzureAccountKey != ""
}

func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 2*time.Minute),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB

		TaggingBaseURL: os.Getenv("HF_API_URL"),
		TaggingToken:   os.Getenv("HF_TOKEN"),
		TaggingTimeout: parseDurationOrDefault("TAGGING_TIMEOUT", 30*time.Second),
		MedicalModel:   getEnvOrDefault("MEDICAL_MODEL", "openai/clip-vit-base-patch32"),
		GeneralModel:   getEnvOrDefault("GENERAL_MODEL", "Salesforce/blip-image-captioning-large"),
		ProductModel:   getEnvOrDefault("PRODUCT_MODEL", "google/vit-base-patch16-224"),

		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:       getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:         getEnvOrDefault("GROQ_MODEL", "llama-3.3-70b-specdec"),
		GroqTemperature:   parseFloatOrDefault("GROQ_TEMPERATURE", 0.3),
		GenerationTimeout: parseDurationOrDefault("GENERATION_TIMEOUT", 60*time.Second),

		OCREnabled:  parseBoolOrDefault("OCR_ENABLED", false),
		OCRLanguage: getEnvOrDefault("OCR_LANGUAGE", "eng"),

		AzureAccountName: os.Getenv("AZURE_ACCOUNT_NAME"),
		AzureAccountKey:  os.Getenv("AZURE_ACCOUNT_KEY"),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.TaggingTimeout <= 0 || cfg.GenerationTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, tagging=%s, generation=%s)",
			cfg.RequestTimeout, cfg.TaggingTimeout, cfg.GenerationTimeout)
	}
	if cfg.TaggingBaseURL == "" {
		return nil, fmt.Errorf("HF_API_URL is required")
	}
	if cfg.TaggingToken == "" {
		return nil, fmt.Errorf("HF_TOKEN is required")
	}
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if cfg.GroqTemperature < 0 || cfg.GroqTemperature > 2 {
		return nil, fmt.Errorf("GROQ_TEMPERATURE out of range: %v", cfg.GroqTemperature)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 32); err == nil {
			return float32(f)
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
