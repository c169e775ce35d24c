package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBUrl           string
	CORSAllowOrigin string
	// APIJWTSecret enables the boundary bearer-token gate when set.
	APIJWTSecret string
}

func LoadConfig() (*Config, error) {
	// .env is only effective locally; ignored in production when absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		APIJWTSecret:    getEnv("API_JWT_SECRET", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
