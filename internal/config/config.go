package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBLogLevel string
	SQLitePath string

	Port    string
	GinMode string
	AppEnv  string

	SessionStore  string
	SessionSecret string
	RedisHost     string
	RedisPort     string
}

var defaults = map[string]string{
	"DB_DRIVER":      DriverPostgres,
	"DB_HOST":        "localhost",
	"DB_PORT":        "5432",
	"DB_USER":        "username",
	"DB_PASSWORD":    "password",
	"DB_NAME":        "database_name",
	"DB_SSLMODE":     "disable",
	"DB_LOG_LEVEL":   "warn",
	"SQLITE_PATH":    "project_management.db",
	"PORT":           "8080",
	"GIN_MODE":       "debug",
	"APP_ENV":        "development",
	"SESSION_STORE":  "cookie",
	"SESSION_SECRET": "default-secret-key-change-me",
	"REDIS_HOST":     "localhost",
	"REDIS_PORT":     "6379",
}

// Load reads the given dotenv files (missing files are skipped) and then
// resolves every key from the environment, falling back to defaults.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{
		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBSSLMode:     v.GetString("DB_SSLMODE"),
		DBLogLevel:    v.GetString("DB_LOG_LEVEL"),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		Port:          v.GetString("PORT"),
		GinMode:       v.GetString("GIN_MODE"),
		AppEnv:        v.GetString("APP_ENV"),
		SessionStore:  strings.ToLower(v.GetString("SESSION_STORE")),
		SessionSecret: v.GetString("SESSION_SECRET"),
		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			c.DBUser,
			c.DBPassword,
			c.DBHost,
			c.DBPort,
			c.DBName,
		)
	case DriverSQLite:
		// mattn/go-sqlite3 leaves foreign keys off unless asked
		return c.SQLitePath + "?_foreign_keys=on"
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			c.DBHost,
			c.DBUser,
			c.DBPassword,
			c.DBName,
			c.DBPort,
			c.DBSSLMode,
		)
	}
}

// RedisAddr returns host:port of the session redis.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
