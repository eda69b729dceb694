package config

import (
	"os"
	"strconv"
)

// DefaultJWTSecret is the insecure development fallback used when JWT_SECRET
// is not set. Startup logs a warning whenever it is in effect.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string

	// JWTSecret signs identity tokens. JWTSecretIsDefault is true when the
	// insecure fallback is in use.
	JWTSecret          string
	JWTSecretIsDefault bool

	// Password enables the deployment-wide shared-secret gate when non-empty.
	// Empty disables that gate entirely.
	Password string

	CORSOrigins []string
	SwaggerHost string
	Version     string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	secret := os.Getenv("JWT_SECRET")
	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/notebook?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          secret,
		JWTSecretIsDefault: secret == "",
		Password:           os.Getenv("NOTEBOOK_PASSWORD"),
		CORSOrigins:        []string{getEnv("CORS_ORIGIN", "*")},
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
		Version:            getEnv("APP_VERSION", "0.2.2"),
	}
	if cfg.JWTSecretIsDefault {
		cfg.JWTSecret = DefaultJWTSecret
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
