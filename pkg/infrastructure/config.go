package infrastructure

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"3000"`
	DatabaseURL  string `env:"SNAPSHOTS_DATABASE_URL"`
	AIServiceURL string `env:"AI_SERVICE_URL" envDefault:"http://ai-service:8000"`
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"templates"`
	ChromePath   string `env:"CHROME_PATH"`
}

// LoadConfig reads a .env file when present, then parses the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
