package config

import "os"

// Environment names the runtime environment the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime environment: CI pipelines are detected
// from the CI variable, everything else comes from ENV. Unset or unknown
// values fall back to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	}
	return Development
}

// IsDevelopment reports whether the process runs in development; gin's debug
// mode is only kept there.
func IsDevelopment() bool {
	return GetEnvironment() == Development
}

// IsProduction reports whether the process runs in production, where
// placeholder secrets are rejected at startup.
func IsProduction() bool {
	return GetEnvironment() == Production
}
