package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every externally supplied setting. It is loaded once in
// main and passed to the controllers at construction time; nothing else
// reads the process environment.
type Config struct {
	Port            string
	MongoURI        string
	DatabaseName    string
	SecretKey       string
	StripeSecretKey string
	FrontendURL     string
	UploadDir       string
	Currency        string
	AdminEmail      string
	AdminPassword   string
	AllowedOrigins  []string
}

// Load reads .env (when present) and the process environment. The payment
// secret, token secret and frontend base URL have no usable defaults, so a
// missing value is a startup error rather than a per-request failure.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:    getEnv("DB_NAME", "dishdash"),
		SecretKey:       os.Getenv("SECRET_KEY"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		Currency:        getEnv("CURRENCY", "inr"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "dishdash.restora@gmail.com"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		AllowedOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is not defined in environment variables")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not defined in environment variables")
	}
	if cfg.FrontendURL == "" {
		return nil, fmt.Errorf("FRONTEND_URL is not defined in environment variables")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
