package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port              string
	AppEnv            string
	AppURL            string
	AppAuthKey        string
	AppEncKey         string
	SheetsWebAppURL   string
	LeadStorePath     string
	AdminUsername     string
	AdminPasswordHash string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		Port:              getEnv("APP_PORT", ":8080"),
		AppEnv:            os.Getenv("APP_ENV"),
		AppURL:            os.Getenv("APP_URL"),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		SheetsWebAppURL:   os.Getenv("SHEETS_WEB_APP_URL"),
		LeadStorePath:     getEnv("LEAD_STORE_PATH", "fario_leads.db"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
