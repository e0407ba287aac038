package config

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"3000" validate:"gte=1,lte=65535"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warning error"`
	Database Database
	Reviews  Reviews
	Redis    Redis
	Limits   Limits
}

type Database struct {
	Host     string `env:"DB_HOST" envDefault:"localhost" validate:"required"`
	Port     int    `env:"DB_PORT" envDefault:"5432" validate:"gte=1,lte=65535"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"goodreads" validate:"required"`
	PoolSize int32  `env:"DB_POOL_SIZE" envDefault:"4" validate:"gte=1"`
}

type Reviews struct {
	APIKey string  `env:"NYT_API_KEY"`
	URL    string  `env:"NYT_REVIEWS_URL" envDefault:"https://api.nytimes.com/svc/books/v3/reviews.json" validate:"required,url"`
	RPS    float64 `env:"REVIEWS_RPS" envDefault:"5" validate:"gt=0"`
}

// Redis configures the optional review cache. An empty Addr disables it.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	TTL      time.Duration `env:"REVIEW_CACHE_TTL" envDefault:"1h" validate:"gt=0"`
}

type Limits struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20" validate:"gt=0"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"40" validate:"gte=1"`
}

var validate = validator.New()

func loadEnvFiles() {
	// godotenv never overrides variables already set by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads configuration from the environment. A numeric first element of
// args overrides PORT.
func Load(args []string) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if len(args) > 0 {
		if port, err := strconv.Atoi(args[0]); err == nil && port > 0 {
			cfg.Port = port
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(args []string) *Config {
	cfg, err := Load(args)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
