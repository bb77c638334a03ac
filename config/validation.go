package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is internally consistent and
// meets the requirements of the current environment.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}
	if cfg.DatasetPath == "" && cfg.DatasetS3Bucket == "" {
		errs = append(errs, "one of DATASET_PATH or DATASET_S3_BUCKET is required")
	}
	if cfg.DatasetS3Bucket != "" && cfg.DatasetS3Key == "" {
		errs = append(errs, "DATASET_S3_KEY is required when DATASET_S3_BUCKET is set")
	}
	if cfg.HasDatabase() {
		if cfg.DBUser == "" {
			errs = append(errs, "DB_USER (or the db_user secret) is required when DB_HOST is set")
		}
		if cfg.DBPassword == "" {
			errs = append(errs, "DB_PASSWORD (or the db_password secret) is required when DB_HOST is set")
		}
	}

	if IsProduction() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == "dev-secret-change-me" {
			errs = append(errs, "JWT_SECRET (or the jwt_secret secret) must be set to a real value in production")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
