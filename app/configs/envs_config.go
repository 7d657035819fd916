package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AppAuthKey string
	AppEncKey  string

	// AdminEmailDomain is the organizational suffix granting the admin
	// capability, e.g. "tmax.com".
	AdminEmailDomain string

	// BannerExclusivity selects the activation policy: "exclusive"
	// (default) or "advisory".
	BannerExclusivity string

	UploadDir     string
	UploadBaseURL string

	AppEnv string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		Port:              getEnvDefault("APP_PORT", ":8080"),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		AdminEmailDomain:  getEnvDefault("ADMIN_EMAIL_DOMAIN", "tmax.com"),
		BannerExclusivity: getEnvDefault("BANNER_EXCLUSIVITY", "exclusive"),
		UploadDir:         getEnvDefault("UPLOAD_DIR", "uploads"),
		UploadBaseURL:     getEnvDefault("UPLOAD_BASE_URL", "/uploads"),
		AppEnv:            os.Getenv("APP_ENV"),
	}
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var LoadENV = LoadEnv()
