package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	SiteBaseURL   string
	SessionSecret string
	SeedDemoData  bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "kitchen.db"),
		Port:          getEnv("PORT", "8000"),
		SiteBaseURL:   getEnv("SITE_BASE_URL", "http://localhost:8000"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
