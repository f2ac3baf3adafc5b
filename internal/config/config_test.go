package config

import (
	"testing"
	"time"

	"github.com/Ebiethub/AI-image-chat/internal/category"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HF_API_URL", "https://api-inference.example.com/models/")
	t.Setenv("HF_TOKEN", "hf-token")
	t.Setenv("GROQ_API_KEY", "groq-key")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TaggingTimeout != 30*time.Second {
		t.Errorf("Expected 30s tagging timeout, got %s", cfg.TaggingTimeout)
	}
	if cfg.GenerationTimeout != 60*time.Second {
		t.Errorf("Expected 60s generation timeout, got %s", cfg.GenerationTimeout)
	}
	if cfg.GroqTemperature != 0.3 {
		t.Errorf("Expected temperature 0.3, got %v", cfg.GroqTemperature)
	}
	if cfg.OCREnabled {
		t.Error("Expected OCR disabled by default")
	}
	if cfg.AzureEnabled() {
		t.Error("Expected Azure disabled without credentials")
	}
}

func TestLoadFromEnv_MissingSecrets(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{"missing HF_API_URL", "HF_API_URL"},
		{"missing HF_TOKEN", "HF_TOKEN"},
		{"missing GROQ_API_KEY", "GROQ_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.omit, "")

			if _, err := LoadFromEnv(); err == nil {
				t.Errorf("Expected error when %s is missing", tt.omit)
			}
		})
	}
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for invalid port")
	}
}

func TestTaggingModel(t *testing.T) {
	cfg := &Config{
		MedicalModel: "med",
		GeneralModel: "gen",
		ProductModel: "prod",
	}

	tests := []struct {
		cat  category.Category
		want string
	}{
		{category.Medical, "med"},
		{category.General, "gen"},
		{category.Product, "prod"},
	}

	for _, tt := range tests {
		if got := cfg.TaggingModel(tt.cat); got != tt.want {
			t.Errorf("TaggingModel(%s) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestServerAddress(t *testing.T) {
	cfg := &Config{Host: " 0.0.0.0 ", Port: " 9090 "}
	if got := cfg.ServerAddress(); got != "0.0.0.0:9090" {
		t.Errorf("ServerAddress() = %q", got)
	}
}
