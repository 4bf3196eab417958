package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Ollama   OllamaConfig
	JWT      JWTConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// CatalogConfig selects where the shoe catalog is loaded from.
// Source is "file" or "postgres".
type CatalogConfig struct {
	Source            string
	CatalogPath       string
	MarketContextPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	NarrativeTTL  time.Duration
}

type OllamaConfig struct {
	Host           string
	Model          string
	RequestTimeout time.Duration
	Temperature    float64
	MaxConcurrency int
}

type JWTConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	ollamaTimeout, err := strconv.Atoi(getEnv("OLLAMA_TIMEOUT_SECONDS", "8"))
	if err != nil || ollamaTimeout <= 0 {
		return nil, errors.New("invalid ollama timeout")
	}

	ollamaTemp, err := strconv.ParseFloat(getEnv("OLLAMA_TEMPERATURE", "0.2"), 64)
	if err != nil {
		return nil, errors.New("invalid ollama temperature")
	}

	narrativeConcurrency, err := strconv.Atoi(getEnv("NARRATIVE_CONCURRENCY", "3"))
	if err != nil || narrativeConcurrency <= 0 {
		return nil, errors.New("invalid narrative concurrency")
	}

	narrativeTTL, err := strconv.Atoi(getEnv("NARRATIVE_CACHE_TTL_MINUTES", "60"))
	if err != nil || narrativeTTL <= 0 {
		return nil, errors.New("invalid narrative cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Shoe Scout API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Catalog: CatalogConfig{
			Source:            getEnv("CATALOG_SOURCE", "file"),
			CatalogPath:       getEnv("CATALOG_PATH", "data/catalog.json"),
			MarketContextPath: getEnv("MARKET_CONTEXT_PATH", "data/market_context.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "shoe_scout"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			NarrativeTTL:  time.Duration(narrativeTTL) * time.Minute,
		},
		Ollama: OllamaConfig{
			Host:           getEnv("OLLAMA_HOST", "http://localhost:11434"),
			Model:          getEnv("OLLAMA_MODEL", "llama3.1"),
			RequestTimeout: time.Duration(ollamaTimeout) * time.Second,
			Temperature:    ollamaTemp,
			MaxConcurrency: narrativeConcurrency,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
	}

	if cfg.Catalog.Source != "file" && cfg.Catalog.Source != "postgres" {
		return nil, errors.New("catalog source must be file or postgres")
	}

	if cfg.Catalog.Source == "file" && cfg.Catalog.CatalogPath == "" {
		return nil, errors.New("missing catalog path")
	}

	if cfg.Catalog.Source == "postgres" && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
