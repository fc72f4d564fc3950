package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	ServerPort     string   `env:"PORT" envDefault:"8080"`
	LogMode        string   `env:"LOG_MODE" envDefault:"dev"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Neo4jURI      string `env:"NEO4J_URI" envDefault:"neo4j://localhost:7687"`
	Neo4jUser     string `env:"NEO4J_USERNAME" envDefault:"neo4j"`
	Neo4jPassword string `env:"NEO4J_PASSWORD"`
	Neo4jDatabase string `env:"NEO4J_DATABASE"`

	MaxPoolSize        int           `env:"NEO4J_MAX_POOL_SIZE" envDefault:"50"`
	ConnectionLifetime time.Duration `env:"NEO4J_MAX_CONNECTION_LIFETIME" envDefault:"1h"`
	AcquisitionTimeout time.Duration `env:"NEO4J_ACQUISITION_TIMEOUT" envDefault:"60s"`

	ImportBatchSize int    `env:"IMPORT_BATCH_SIZE" envDefault:"100"`
	RootsPath       string `env:"ROOTS_PATH"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
