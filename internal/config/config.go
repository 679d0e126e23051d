package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Bybit   BybitConfig
	Options OptionsConfig
	CORS    CORSConfig
	Logging LoggingConfig
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig holds record store specific configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

// BybitConfig holds configuration for the exchange catalog probe
type BybitConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// OptionsConfig holds aggregation engine configuration
type OptionsConfig struct {
	ScanLimit      int
	StreamInterval time.Duration
}

// CORSConfig holds cross-origin configuration for the dashboard frontend
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging specific configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// LoadConfig loads the configuration from file and environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Environment variables override
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "120s")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.poolSize", 10)

	// Bybit probe defaults
	v.SetDefault("bybit.baseURL", "https://api.bybit.com")
	v.SetDefault("bybit.timeout", "5s")
	v.SetDefault("bybit.maxRetries", 2)

	// Aggregation defaults
	v.SetDefault("options.scanLimit", 500)
	v.SetDefault("options.streamInterval", "2s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
