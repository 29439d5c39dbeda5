package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	MongoURL string
	MongoDB  string

	// Every remote fetch is bounded by this timeout, spreadsheet included.
	FetchTimeout time.Duration

	USITCURL       string
	WTOProfilesURL string
	USTRUpdatesURL string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPAPIKey     string
	AlertSender    string
	AlertRecipient string
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "tariff_tracker"),

		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 10*time.Second),

		USITCURL:       getEnv("USITC_URL", "https://hts.usitc.gov/"),
		WTOProfilesURL: getEnv("WTO_PROFILES_URL", "https://www.wto.org/english/res_e/booksp_e/tariff_profiles21_e.xlsx"),
		USTRUpdatesURL: getEnv("USTR_UPDATES_URL", "https://ustr.gov/issue-areas/enforcement/section-301-investigations/tariff-actions"),

		SMTPHost:       getEnv("SMTP_HOST", "smtp.sendgrid.net"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUser:       getEnv("SMTP_USER", "apikey"),
		SMTPAPIKey:     getEnv("SMTP_API_KEY", ""),
		AlertSender:    getEnv("ALERT_SENDER", ""),
		AlertRecipient: getEnv("ALERT_RECIPIENT", ""),
	}
}

// MailConfigured reports whether enough credentials are present to send
// watchlist alerts. Missing mail config disables alerts, it never blocks
// startup or saves.
func (c *Config) MailConfigured() bool {
	return c.SMTPAPIKey != "" && c.AlertSender != "" && c.AlertRecipient != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
