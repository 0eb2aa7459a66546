package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	AuthSecret    string
	OpenAIKey     string
	OpenAIBaseURL string
	LogFile       string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tradepost.db"
	} // sqlite file in project root
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		AuthSecret:    os.Getenv("AUTH_SECRET"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: baseURL,
		LogFile:       os.Getenv("LOG_FILE"),
	}
	if cfg.AuthSecret == "" {
		log.Printf("[config] AUTH_SECRET is empty; all authenticated routes will reject tokens")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s OPENAI_BASE_URL=%s", cfg.Port, cfg.DBDSN, cfg.OpenAIBaseURL)
	return cfg
}
