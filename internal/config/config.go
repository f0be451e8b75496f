package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tenders/pkg/database"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	RateLimit       float64

	LogLevel  string
	LogFormat string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	Postgres database.Config
}

var envKeys = map[string]string{
	"server_address":             "SERVER_ADDRESS",
	"shutdown_timeout":           "SHUTDOWN_TIMEOUT",
	"rate_limit":                 "RATE_LIMIT",
	"log_level":                  "LOG_LEVEL",
	"log_format":                 "LOG_FORMAT",
	"redis_addr":                 "REDIS_ADDR",
	"redis_password":             "REDIS_PASSWORD",
	"redis_db":                   "REDIS_DB",
	"cache_ttl":                  "CACHE_TTL",
	"postgres_conn":              "POSTGRES_CONN",
	"database_url":               "DATABASE_URL",
	"postgres_jdbc_url":          "POSTGRES_JDBC_URL",
	"postgres_username":          "POSTGRES_USERNAME",
	"postgres_password":          "POSTGRES_PASSWORD",
	"postgres_host":              "POSTGRES_HOST",
	"postgres_port":              "POSTGRES_PORT",
	"postgres_database":          "POSTGRES_DATABASE",
	"postgres_sslmode":           "POSTGRES_SSLMODE",
	"postgres_timezone":          "POSTGRES_TIMEZONE",
	"postgres_max_open_conns":    "POSTGRES_MAX_OPEN_CONNS",
	"postgres_max_idle_conns":    "POSTGRES_MAX_IDLE_CONNS",
	"postgres_conn_max_lifetime": "POSTGRES_CONN_MAX_LIFETIME",
}

// Load reads the process environment. Values from envFile fill in variables that
// are not already set; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}
	setDefaults(v)

	cfg := &Config{
		ServerAddress:   v.GetString("server_address"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		RateLimit:       v.GetFloat64("rate_limit"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		RedisAddr:       v.GetString("redis_addr"),
		RedisPassword:   v.GetString("redis_password"),
		RedisDB:         v.GetInt("redis_db"),
		CacheTTL:        v.GetDuration("cache_ttl"),
		Postgres: database.Config{
			Conn:            v.GetString("postgres_conn"),
			DatabaseURL:     v.GetString("database_url"),
			JDBCURL:         v.GetString("postgres_jdbc_url"),
			Host:            v.GetString("postgres_host"),
			Port:            v.GetString("postgres_port"),
			User:            v.GetString("postgres_username"),
			Password:        v.GetString("postgres_password"),
			DBName:          v.GetString("postgres_database"),
			SSLMode:         v.GetString("postgres_sslmode"),
			TimeZone:        v.GetString("postgres_timezone"),
			MaxOpenConns:    v.GetInt("postgres_max_open_conns"),
			MaxIdleConns:    v.GetInt("postgres_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("postgres_conn_max_lifetime"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_address", "0.0.0.0:8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cache_ttl", 30*time.Second)
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("postgres_database", "postgres")
	v.SetDefault("postgres_sslmode", "disable")
	v.SetDefault("postgres_timezone", "UTC")
	v.SetDefault("postgres_max_open_conns", 10)
	v.SetDefault("postgres_max_idle_conns", 5)
	v.SetDefault("postgres_conn_max_lifetime", 5*time.Minute)
}

func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return errors.New("SERVER_ADDRESS must not be empty")
	}
	if c.RateLimit < 0 {
		return errors.New("RATE_LIMIT must not be negative")
	}
	if _, err := database.BuildDSN(&c.Postgres); err != nil {
		return fmt.Errorf("postgres settings: %w", err)
	}
	return nil
}
