package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers understood by the server
const (
	StorageMongoDB = "mongodb"
	StorageMemory  = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Storage StorageConfig
	JWT     JWTConfig
	Uploads UploadsConfig
	Log     LogConfig
	Site    SiteConfig
	Admin   AdminConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	Mode           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI            string
	Database       string
	TimeoutSeconds int
}

// StorageConfig selects the repository implementation
type StorageConfig struct {
	Driver string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// UploadsConfig holds configuration for files uploaded through the admin API
type UploadsConfig struct {
	Dir               string
	URLPrefix         string
	MaxMemoryMB       int64
	AllowedExtensions []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string
	Format     string // text | json
	Output     string // stdout | file | both
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// SiteConfig holds settings for the public pages
type SiteConfig struct {
	DefaultLanguage string
}

// AdminConfig holds the account created by cmd/seed-admin (ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_RESET)
type AdminConfig struct {
	Email    string
	Password string
	Reset    bool
}

// LoadConfig loads configuration from a .env file, config.yaml and environment variables.
// path is an additional directory searched for config.yaml.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside local development
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Comma separated lists arrive from the environment as a single string
	cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins)
	cfg.Uploads.AllowedExtensions = splitList(cfg.Uploads.AllowedExtensions)
	cfg.Uploads.URLPrefix = "/" + strings.Trim(cfg.Uploads.URLPrefix, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT secret is required (JWT_SECRET)")
	}
	switch c.Storage.Driver {
	case StorageMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("config: MongoDB URI is required (MONGODB_URI)")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.Uploads.Dir == "" {
		return errors.New("config: uploads directory is required")
	}
	if c.Uploads.URLPrefix == "/" || c.Uploads.URLPrefix == "/api" || c.Uploads.URLPrefix == "/static" {
		return fmt.Errorf("config: uploads URL prefix %q collides with another route", c.Uploads.URLPrefix)
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "5000")
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("Server.AllowedOrigins", []string{"*"})
	v.SetDefault("MongoDB.URI", "")
	v.SetDefault("MongoDB.Database", "bhagyam-lottery")
	v.SetDefault("MongoDB.TimeoutSeconds", 10)
	v.SetDefault("Storage.Driver", StorageMongoDB)
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 30*24*60*60) // 30 days
	v.SetDefault("Uploads.Dir", "uploads")
	v.SetDefault("Uploads.URLPrefix", "/uploads")
	v.SetDefault("Uploads.MaxMemoryMB", 8)
	v.SetDefault("Uploads.AllowedExtensions", []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".pdf"})
	v.SetDefault("Log.Level", "info")
	v.SetDefault("Log.Format", "text")
	v.SetDefault("Log.Output", "stdout")
	v.SetDefault("Log.File", "logs/app.log")
	v.SetDefault("Log.MaxSizeMB", 50)
	v.SetDefault("Log.MaxBackups", 5)
	v.SetDefault("Log.MaxAgeDays", 30)
	v.SetDefault("Site.DefaultLanguage", "en")
	v.SetDefault("Admin.Email", "admin@bhagyamlottery.com")
	v.SetDefault("Admin.Password", "")
	v.SetDefault("Admin.Reset", false)
}

// bindLegacyEnv keeps the variable names used by earlier deployments working
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"Server.Port": {"SERVER_PORT", "PORT"},
		"MongoDB.URI": {"MONGODB_URI", "MONGO_URI"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
