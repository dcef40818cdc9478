package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables each storage backend cannot run without
var RequiredEnvVars = map[string][]string{
	BackendMemory:   nil,
	BackendSQLite:   nil,
	BackendRedis:    {"REDIS_ADDR"},
	BackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
}

// ValidateEnv checks the schema version, when set, and the variables the
// selected storage backend requires
func ValidateEnv() error {
	if schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := getEnv("STORAGE_BACKEND", DefaultStorageBackend)
	required, ok := RequiredEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s storage: %s", backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("ENV_SCHEMA_VERSION") == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion))
	}

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if env := os.Getenv("ENVIRONMENT"); (env == "prod" || env == "production") && strings.EqualFold(os.Getenv("DEV_MODE"), "true") {
		warnings = append(warnings, "DEV_MODE is enabled in production - daily claim cooldowns are bypassed")
	}

	return warnings, nil
}
