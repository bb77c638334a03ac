package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Dataset source: a local CSV path, or an S3 bucket/key pair
	DatasetPath     string
	DatasetS3Bucket string
	DatasetS3Key    string
	AWSRegion       string

	// Database configuration (optional; auth/history disabled when absent)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; rate limiting disabled when absent)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret        string
	JWTExpireMinutes int

	// CORS configuration
	CORSOrigins []string
}

// defaultCORSOrigins match the local frontend dev hosts.
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5174",
}

// LoadConfig creates a new Config instance from environment variables, with
// Docker-secret fallbacks for sensitive values and development defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DatasetPath:     os.Getenv("DATASET_PATH"),
		DatasetS3Bucket: os.Getenv("DATASET_S3_BUCKET"),
		DatasetS3Key:    getEnv("DATASET_S3_KEY", "researchdataset.csv"),
		AWSRegion:       os.Getenv("AWS_REGION"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getSecret("DB_USER", "db_user"),
		DBPassword: getSecret("DB_PASSWORD", "db_password"),
		DBName:     getEnv("DB_NAME", "platewise"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD", "redis_password"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisDB:       0,

		JWTSecret: getSecret("JWT_SECRET", "jwt_secret"),
	}

	if cfg.DatasetPath == "" && cfg.DatasetS3Bucket == "" {
		cfg.DatasetPath = "researchdataset.csv"
	}

	expire := getEnv("JWT_EXPIRE_MIN", "43200")
	minutes, err := strconv.Atoi(expire)
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRE_MIN %q", expire)
	}
	cfg.JWTExpireMinutes = minutes

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = defaultCORSOrigins
	}

	if cfg.JWTSecret == "" {
		if IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// HasDatabase reports whether an account/history store is configured.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

// HasRedis reports whether a Redis instance is configured.
func (c *Config) HasRedis() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret reads a sensitive value from the environment, falling back to a
// Docker secret file under SECRETS_DIR.
func getSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
