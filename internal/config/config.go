package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"local"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT" default:"8080"`

	ProjectID                    string `envconfig:"FIREBASE_PROJECT_ID"`
	GoogleCloudProject           string `envconfig:"GOOGLE_CLOUD_PROJECT"`
	ServiceAccountJSON           string `envconfig:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	StorageBucket                string `envconfig:"FIREBASE_STORAGE_BUCKET"`
	SignedURLServiceAccountEmail string `envconfig:"SIGNED_URL_SERVICE_ACCOUNT_EMAIL"`

	// comma separated; split into AllowedOrigins by Load
	Origins        string   `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	AllowedOrigins []string `ignored:"true"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	PaymentCurrency     string `envconfig:"PAYMENT_CURRENCY" default:"usd"`

	RequireAdminAuth bool    `envconfig:"REQUIRE_ADMIN_AUTH" default:"false"`
	RateLimitRPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	// FIREBASE_PROJECT_ID wins over GOOGLE_CLOUD_PROJECT
	if cfg.ProjectID == "" {
		cfg.ProjectID = cfg.GoogleCloudProject
	}
	if cfg.StorageBucket == "" && cfg.ProjectID != "" {
		cfg.StorageBucket = cfg.ProjectID + ".appspot.com"
	}
	cfg.PaymentCurrency = strings.ToLower(strings.TrimSpace(cfg.PaymentCurrency))
	cfg.AllowedOrigins = splitOrigins(cfg.Origins)

	return cfg, nil
}

func splitOrigins(origins string) []string {
	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	return allowed
}
