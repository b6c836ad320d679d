package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Admin           AdminConfig
}

// AdminConfig is static admin-site metadata, fixed at startup and handed to
// whatever renders the admin surface; it is never mutated after Load.
type AdminConfig struct {
	SiteHeader string
	SiteTitle  string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		AccessTokenTTL:  time.Duration(getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		RefreshTokenTTL: time.Duration(getEnvInt("REFRESH_TOKEN_TTL_HOURS", 168)) * time.Hour,
		Admin: AdminConfig{
			SiteHeader: getEnv("ADMIN_SITE_HEADER", "Connectly Administration"),
			SiteTitle:  getEnv("ADMIN_SITE_TITLE", "Connectly Admin"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
