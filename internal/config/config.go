package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultDownloadURL = "https://drive.google.com/file/d/div-ai-full-package/view"

type Config struct {
	Port             string
	DatabaseURL      string
	IdentityMode     string
	DownloadURL      string
	AdminPassword    string
	AdminRecentLimit int
	CaptureRateLimit int
	SessionTTL       time.Duration
	SecureCookies    bool
	AllowedOrigins   []string
	LogLevel         string
	Mail             MailConfig
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether an SMTP host is configured.
func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment and defaults")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults for
// anything missing or malformed.
func FromEnv(getenv func(string) string) *Config {
	port := withDefault(getenv("SITE_PORT"), "8080")
	if port[0] != ':' {
		port = ":" + port
	}

	return &Config{
		Port:             port,
		DatabaseURL:      withDefault(getenv("DATABASE_URL"), "file:leads.db"),
		IdentityMode:     withDefault(getenv("LEAD_IDENTITY_MODE"), "hash"),
		DownloadURL:      withDefault(getenv("DOWNLOAD_URL"), DefaultDownloadURL),
		AdminPassword:    getenv("ADMIN_PASSWORD"),
		AdminRecentLimit: intOr(getenv("ADMIN_RECENT_LIMIT"), 10),
		CaptureRateLimit: intOr(getenv("CAPTURE_RATE_LIMIT"), 10),
		SessionTTL:       durationOr(getenv("SESSION_TTL"), 24*time.Hour),
		SecureCookies:    getenv("SECURE_COOKIES") == "true",
		AllowedOrigins:   splitList(withDefault(getenv("ALLOWED_ORIGINS"), "*")),
		LogLevel:         withDefault(getenv("LOG_LEVEL"), "info"),
		Mail: MailConfig{
			Host:     getenv("MAIL_HOST"),
			Port:     intOr(getenv("MAIL_PORT"), 587),
			User:     getenv("MAIL_USER"),
			Password: getenv("MAIL_PASS"),
			From:     withDefault(getenv("MAIL_FROM"), "no-reply@div-ai.app"),
		},
	}
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func intOr(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func durationOr(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
