package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL    string
	Host           string
	Port           string
	JwtSecret      string
	PublicBaseURL  string
	AllowedOrigins []string
	SampleDataPath string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Host:           os.Getenv("HOST"),
		Port:           os.Getenv("PORT"),
		JwtSecret:      os.Getenv("JWT_SECRET"),
		PublicBaseURL:  os.Getenv("PUBLIC_BASE_URL"),
		SampleDataPath: os.Getenv("SAMPLE_DATA_PATH"),
	}

	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "https://bhagavadgita.world"
	}
	if cfg.SampleDataPath == "" {
		cfg.SampleDataPath = "./data/sample_chapters.json"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	if cfg.JwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set. This is critical for authentication.")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	return cfg
}
