package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the full set of recognized environment options. Eligibility
// decisions downstream are pure functions of these fields, never ad hoc
// env lookups.
type Config struct {
	HTTPAddr string
	AppURL   string

	// Email / notification channel
	FromSender     string // nominal "from", "a@b.tld" or "Name <a@b.tld>"
	ResendAPIKey   string
	AllowAllEmails bool   // operator override for arbitrary recipients
	TestRecipient  string // allow-listed inbox when sending is restricted
	AdminEmail     string

	// Payment gateway
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	// Persistence
	RedisAddr    string // empty: in-memory cart store
	OrdersDBPath string
}

const (
	DefaultOwnerEmail = "uvicornshoppie@gmail.com"
	DefaultAdminEmail = "uvicornshoppie@gmail.com"
)

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		AppURL:                getEnv("APP_URL", "http://localhost:8080"),
		FromSender:            os.Getenv("FROM_SENDER"),
		ResendAPIKey:          os.Getenv("RESEND_API_KEY"),
		AllowAllEmails:        strings.EqualFold(os.Getenv("ALLOW_ALL_EMAILS"), "true"),
		TestRecipient:         getEnv("RESEND_TEST_TO", DefaultOwnerEmail),
		AdminEmail:            getEnv("ADMIN_EMAIL", DefaultAdminEmail),
		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		OrdersDBPath:          getEnv("ORDERS_DB_PATH", "./data/orders.db"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
