package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	PublicBaseURL string
	UploadDir     string

	StripeSecretKey     string
	StripeWebhookSecret string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	ttlHours := 24
	if v, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24")); err == nil && v > 0 {
		ttlHours = v
	}

	return &Config{
		DBSource:            getEnv("DB_SOURCE", "cuisinecart.db"),
		Port:                getEnv("PORT", "8000"),
		JWTSecret:           getEnv("JWT_SECRET", "changeme"),
		JWTTTL:              time.Duration(ttlHours) * time.Hour,
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
