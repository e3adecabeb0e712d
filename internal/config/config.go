package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN       string
	ServerPort  string
	FrontendURL string

	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPass            string
	SMTPFrom            string
	NotifyFallbackEmail string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		SMTPFrom:            os.Getenv("SMTP_FROM"),
		NotifyFallbackEmail: os.Getenv("NOTIFY_FALLBACK_EMAIL"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}

	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			log.Fatalf("SMTP_PORT inválido: %q", v)
		}
		cfg.SMTPPort = port
	}

	return cfg
}
