package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"3000" validate:"required,numeric"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development staging production test"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10" validate:"gte=0"`
	BodyLimit       string   `envconfig:"BODY_LIMIT" default:"10M" validate:"required"`
	SwaggerEnabled  bool     `envconfig:"SWAGGER_ENABLED" default:"true"`
}

// OpenAIConfig holds settings for the chat completion service.
// BaseURL may point at any OpenAI-compatible endpoint (e.g. https://api.groq.com/openai/v1).
type OpenAIConfig struct {
	APIKey       string        `envconfig:"API_KEY" validate:"required"`
	BaseURL      string        `envconfig:"BASE_URL" validate:"omitempty,url"`
	Model        string        `envconfig:"MODEL" default:"gpt-4o" validate:"required"`
	Organization string        `envconfig:"ORGANIZATION"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"0s" validate:"gte=0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", &config.Server); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}
	if err := envconfig.Process("openai", &config.OpenAI); err != nil {
		return nil, fmt.Errorf("load openai config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	v := pkgvalidator.New()
	if err := v.Validate(&c.Server); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	if err := v.Validate(&c.OpenAI); err != nil {
		return fmt.Errorf("invalid openai config (is OPENAI_API_KEY set?): %w", err)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
