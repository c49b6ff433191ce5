package config

import (
	"os"
	"strconv"
)

// Config holds the full application configuration, populated from
// environment variables.
type Config struct {
	App        AppConfig
	IdentityDB DatabaseConfig
	DomainDB   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	MinIO      MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads configuration from environment variables. The identity
// and domain stores are separate databases, possibly on separate
// servers; each gets its own connection section.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "TsBlog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		IdentityDB: DatabaseConfig{
			Host:     getEnv("IDENTITY_DB_HOST", "localhost"),
			Port:     getEnvInt("IDENTITY_DB_PORT", 5432),
			User:     getEnv("IDENTITY_DB_USER", "postgres"),
			Password: getEnv("IDENTITY_DB_PASSWORD", ""),
			Database: getEnv("IDENTITY_DB_NAME", "tsblog_identity"),
			SSLMode:  getEnv("IDENTITY_DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("IDENTITY_DB_MAX_CONNS", 25),
			MinConns: getEnvInt("IDENTITY_DB_MIN_CONNS", 5),
		},
		DomainDB: DatabaseConfig{
			Host:     getEnv("DOMAIN_DB_HOST", "localhost"),
			Port:     getEnvInt("DOMAIN_DB_PORT", 5432),
			User:     getEnv("DOMAIN_DB_USER", "postgres"),
			Password: getEnv("DOMAIN_DB_PASSWORD", ""),
			Database: getEnv("DOMAIN_DB_NAME", "tsblog"),
			SSLMode:  getEnv("DOMAIN_DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DOMAIN_DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DOMAIN_DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "change-me-in-production"),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 60),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "tsblog-media"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
