package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/visuscan/visuscan/pkg/logx"
)

// Config holds the process configuration, loaded once at startup.
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type OpenAIConfig struct {
	// APIKey is the only required setting; Load fails without it.
	APIKey          string
	CompletionModel string
	// RequestTimeout bounds every outbound completion/embedding call so a
	// stalled upstream cannot hang a request indefinitely.
	RequestTimeout time.Duration
}

// Load reads .env (when present) and the environment. It returns an error
// when OPENAI_API_KEY is absent so the process refuses to start.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logx.Info("No .env file found, using environment variables only")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		OpenAI: OpenAIConfig{
			APIKey:          apiKey,
			CompletionModel: getEnv("OPENAI_MODEL", "gpt-4o"),
			RequestTimeout:  getEnvAsDuration("OPENAI_REQUEST_TIMEOUT", "60s"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}
