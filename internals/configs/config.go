package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	GoogleClientID string

	OSSEndpoint   string
	OSSAccessKey  string
	OSSSecretKey  string
	OSSBucket     string
	OSSPublicBase string

	BrevoAPIKey      string
	BrevoListID      int
	MailSenderName   string
	MailSenderEmail  string
	AdminNotifyEmail string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	OSSEndpoint = GetEnv("ALI_OSS_ENDPOINT")
	OSSAccessKey = GetEnv("ALI_OSS_ACCESS_KEY")
	OSSSecretKey = GetEnv("ALI_OSS_SECRET_KEY")
	OSSBucket = GetEnv("ALI_OSS_BUCKET")
	OSSPublicBase = GetEnv("ALI_OSS_PUBLIC_BASE")

	BrevoAPIKey = GetEnv("BREVO_API_KEY")
	BrevoListID = GetEnvInt("BREVO_LIST_ID", 0)
	MailSenderName = GetEnv("MAIL_SENDER_NAME", "Four Best Property")
	MailSenderEmail = GetEnv("MAIL_SENDER_EMAIL")
	AdminNotifyEmail = GetEnv("ADMIN_NOTIFY_EMAIL")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	if BrevoAPIKey == "" {
		log.Println("⚠️ BREVO_API_KEY belum diset — notifikasi email tidak akan terkirim")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
