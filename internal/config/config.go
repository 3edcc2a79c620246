package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	JWT      JWTConfig      `koanf:"jwt"`
	Sentry   SentryConfig   `koanf:"sentry"`
}

type ServerConfig struct {
	Port        string `koanf:"port"`
	CORSOrigins string `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

type JWTConfig struct {
	Secret        string        `koanf:"secret"`
	AccessExpiry  time.Duration `koanf:"access_expiry"`
	RefreshExpiry time.Duration `koanf:"refresh_expiry"`
}

type SentryConfig struct {
	DSN         string `koanf:"dsn"`
	Environment string `koanf:"environment"`
}

var defaults = map[string]interface{}{
	"server.port":         "8080",
	"server.cors_origins": "*",
	"database.host":       "localhost",
	"database.port":       "5432",
	"database.user":       "postgres",
	"database.name":       "appointments",
	"database.sslmode":    "disable",
	"jwt.access_expiry":   "15m",
	"jwt.refresh_expiry":  "168h",
}

// Load reads the optional yaml config file, then overlays environment
// variables (JWT_SECRET -> jwt.secret). A missing config file is fine; env
// vars alone can configure the service.
func Load(configPath string) (*Config, error) {
	// Best effort; environment may be set by the deployment instead.
	_ = godotenv.Load()

	k := koanf.New(".")

	for key, val := range defaults {
		_ = k.Set(key, val)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// envKey maps SERVER_CORS_ORIGINS to server.cors_origins. Every section is a
// single word, so only the first underscore separates section from leaf;
// later underscores stay part of the leaf name.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(s), "_", ".", 1)
}

func (c *Config) DSN() string {
	return "host=" + c.Database.Host +
		" user=" + c.Database.User +
		" password=" + c.Database.Password +
		" dbname=" + c.Database.Name +
		" port=" + c.Database.Port +
		" sslmode=" + c.Database.SSLMode +
		" TimeZone=UTC"
}
