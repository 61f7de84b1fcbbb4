package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env             string
		Host            string
		Port            string
		ClientRootURLs  []string // first one is the primary, all are allowed CORS origins
		DefaultTimeZone string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		Secret        string
		ExpiryMinutes int
	}
	Email struct {
		From string
	}
	// Invoicing provider credentials. Consumed at process start and handed to
	// the external invoicing collaborator; nothing in this server calls the
	// provider directly.
	Invoicing struct {
		APIURL    string
		Email     string
		APIKey    string
		CompanyID string
	}
}

// Global DB instance, set by ConnectDB via Initialize.
var DB *gorm.DB

var (
	appConfig *Config
	once      sync.Once
)

// LoadConfig loads configuration from environment variables into the Config
// struct. A missing .env file is not an error.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("PORT", "5000")
	cfg.App.DefaultTimeZone = getEnv("APP_DEFAULT_TIMEZONE", "Europe/Bratislava")

	urls := strings.Split(getEnv("APP_CLIENT_ROOT_URL", "http://localhost:4200"), ",")
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			cfg.App.ClientRootURLs = append(cfg.App.ClientRootURLs, u)
		}
	}

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "teamreg")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.JWT.Secret = getEnv("APP_JWT_SECRET", "insecure-dev-secret")
	var err error
	cfg.JWT.ExpiryMinutes, err = getEnvAsInt("APP_JWT_EXPIRY_MINUTES", 12*60)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_JWT_EXPIRY_MINUTES: %w", err)
	}

	cfg.Email.From = getEnv("APP_EMAIL_FROM", "")

	cfg.Invoicing.APIURL = getEnv("SF_API_URL", "")
	cfg.Invoicing.Email = getEnv("SF_AUTH_EMAIL", "")
	cfg.Invoicing.APIKey = getEnv("SF_AUTH_API_KEY", "")
	cfg.Invoicing.CompanyID = getEnv("SF_AUTH_COMPANY_ID", "")

	if cfg.JWT.Secret == "insecure-dev-secret" && cfg.App.Env == "production" {
		log.Println("WARNING: using the default JWT secret in production. Set APP_JWT_SECRET.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes the database connection and sets the global DB.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port, cfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	return gormDB, nil
}

// Initialize loads the configuration and connects to the database, once.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		if _, err := ConnectDB(cfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database: %w", err)
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
