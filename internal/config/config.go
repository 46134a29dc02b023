// Package config loads server settings from defaults, an optional config
// file and the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// Config holds the server configuration
type Config struct {
	MongoURI       string        `mapstructure:"mongo_uri"`
	MongoDatabase  string        `mapstructure:"mongo_database"`
	RedisURI       string        `mapstructure:"redis_uri"`
	Port           string        `mapstructure:"port"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	BanksDir       string        `mapstructure:"banks_dir"`
	ResultCacheTTL time.Duration `mapstructure:"result_cache_ttl"`
	LogLevel       string        `mapstructure:"log_level"`
	CORS           CORSConfig    `mapstructure:"cors"`
}

// CORSConfig holds the values of the Access-Control-Allow-* headers
type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
	AllowedMethods string `mapstructure:"allowed_methods"`
	AllowedHeaders string `mapstructure:"allowed_headers"`
}

var envKeys = map[string]string{
	"mongo_uri":            "MONGO_URI",
	"mongo_database":       "MONGO_DATABASE",
	"redis_uri":            "REDIS_URI",
	"port":                 "PORT",
	"jwt_secret":           "JWT_SECRET",
	"banks_dir":            "BANKS_DIR",
	"result_cache_ttl":     "RESULT_CACHE_TTL",
	"log_level":            "LOG_LEVEL",
	"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
	"cors.allowed_methods": "CORS_ALLOWED_METHODS",
	"cors.allowed_headers": "CORS_ALLOWED_HEADERS",
}

// Load reads the configuration. When path is empty the NEXA_CONFIG
// environment variable names the optional config file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "nexa")
	v.SetDefault("redis_uri", "localhost:6379")
	v.SetDefault("port", "8080")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("banks_dir", "")
	v.SetDefault("result_cache_ttl", 24*time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET, POST, PUT, DELETE, OPTIONS")
	v.SetDefault("cors.allowed_headers", "Content-Type, Authorization")

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path == "" {
		_ = v.BindEnv("config_file", "NEXA_CONFIG")
		path = v.GetString("config_file")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.ResultCacheTTL <= 0 {
		return fmt.Errorf("result cache ttl must be positive, got %s", c.ResultCacheTTL)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// RedisOptions accepts either a redis:// URL or a plain host:port
func (c *Config) RedisOptions() (*redis.Options, error) {
	if strings.HasPrefix(c.RedisURI, "redis://") || strings.HasPrefix(c.RedisURI, "rediss://") {
		opts, err := redis.ParseURL(c.RedisURI)
		if err != nil {
			return nil, fmt.Errorf("parse redis uri: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: c.RedisURI}, nil
}
