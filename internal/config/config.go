/**
* Name: 			config.go
* Description: 		.env 및 환경 변수 기반 서버 설정
* Workflow: 		.env 로드, 환경 변수 읽기, 기본값 적용
 */

package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama3-8b-8192"
	DefaultLLMTimeout  = 30 * time.Second
	DefaultDatabaseURL = "models.db"
	DefaultImageDir    = "images"
	DefaultPort        = "6000"
)

type Config struct {
	Port        string
	DatabaseURL string
	ImageDir    string
	LLM         LLMConfig
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config.Load(): no .env file found, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", DefaultPort),
		DatabaseURL: getEnv("DATABASE_URL", DefaultDatabaseURL),
		ImageDir:    getEnv("IMAGE_DIR", DefaultImageDir),
		LLM: LLMConfig{
			APIKey:  os.Getenv("GROQ_API_KEY"),
			BaseURL: getEnv("GROQ_BASE_URL", DefaultBaseURL),
			Model:   getEnv("GROQ_MODEL", DefaultModel),
			Timeout: DefaultLLMTimeout,
		},
	}

	if raw := os.Getenv("LLM_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("LLM_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.LLM.Timeout = timeout
	}

	if cfg.LLM.APIKey == "" {
		log.Println("Warning: GROQ_API_KEY environment variable is not set. Profile generation will fail.")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
