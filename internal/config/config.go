package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Mail    MailConfig
	Link    LinkConfig
}

type AppConfig struct {
	Environment   string
	HTTPPort      string
	PublicBaseURL string
}

type StorageConfig struct {
	Driver      string
	DatabaseURL string
}

type MailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
}

type LinkConfig struct {
	Secret string
	TTL    time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		PublicBaseURL: strings.TrimRight(req("PUBLIC_BASE_URL"), "/"),
	}

	cfg.Storage = StorageConfig{
		Driver:      opt("STORAGE_DRIVER", StorageDriverPostgres),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	cfg.Mail = MailConfig{
		SendGridAPIKey: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		FromEmail:      opt("MAIL_FROM_EMAIL", "hello@mutualbook.app"),
		FromName:       opt("MAIL_FROM_NAME", "MutualBook"),
	}

	cfg.Link = LinkConfig{
		Secret: opt("LINK_SECRET", "dev-link-secret"),
		TTL:    optDuration("LINK_TTL", 7*24*time.Hour),
	}

	// The durable store cannot start without a connection string. The
	// transient driver exists so local development can run without a DB.
	if cfg.Storage.Driver == StorageDriverPostgres && cfg.Storage.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if err := validDriver(cfg.Storage.Driver); err != nil {
		return Config{}, err
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func validDriver(driver string) error {
	switch driver {
	case StorageDriverPostgres, StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
