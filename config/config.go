package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	DBPath        string
	CORSOrigins   []string
	AdminEmployee string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "stockcontrol.db"),
		CORSOrigins:   strings.Split(get("CORS_ORIGINS", "*"), ","),
		AdminEmployee: get("ADMIN_EMPLOYEE", "1234"),
	}
	log.Printf("[cfg] port=%s db=%s", cfg.Port, cfg.DBPath)
	return cfg
}
