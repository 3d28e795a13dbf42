// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeocodingConfig provides settings for the Nominatim geocoding collaborator.
type GeocodingConfig interface {
	GetNominatimBaseURL() string
	GetGeocodeCountryCode() string
	GetGeocodeCountryName() string
	GetGeocodeUserAgent() string
}

// CatalogConfig provides settings for the upstream catalog backend.
type CatalogConfig interface {
	GetCatalogBaseURL() string
	GetCatalogCacheTTL() time.Duration
}

// RedisConfig provides settings for the Redis cache and session store.
type RedisConfig interface {
	GetRedisURL() string
}

// SessionConfig provides settings for the session store.
type SessionConfig interface {
	GetSessionTTL() time.Duration
}

// EmailConfig provides settings for contact notification emails.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetContactInboxAddress() string
}

// =============================================================================
// Config
// =============================================================================

// APITimeout is the process-wide ceiling for calls to external HTTP
// collaborators (geocoder, catalog backend).
const APITimeout = 30 * time.Second

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	RateLimitRPS   float64
	RateLimitBurst int

	NominatimBaseURL   string
	GeocodeCountryCode string
	GeocodeCountryName string
	GeocodeUserAgent   string

	CatalogBaseURL  string
	CatalogCacheTTL time.Duration

	RedisURL   string
	SessionTTL time.Duration

	EmailEnabled        bool
	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	EmailFromName       string
	EmailFromAddress    string
	ContactInboxAddress string
}

// Load reads configuration from the environment, loading .env first when present.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		CORSAllowAll:   getEnvBool("CORS_ALLOW_ALL", true),
		CORSOrigins:    splitAndTrim(getEnv("CORS_ORIGINS", "")),
		CORSAllowCreds: getEnvBool("CORS_ALLOW_CREDENTIALS", false),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),

		NominatimBaseURL:   getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeCountryCode: getEnv("GEOCODE_COUNTRY_CODE", "ni"),
		GeocodeCountryName: getEnv("GEOCODE_COUNTRY_NAME", "Nicaragua"),
		GeocodeUserAgent:   getEnv("GEOCODE_USER_AGENT", "EMSInetSolutLanding/1.0"),

		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://app.emsinetsolut.com"),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),

		RedisURL:   getEnv("REDIS_URL", ""),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),

		EmailEnabled:        getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "EMS InetSolut"),
		EmailFromAddress:    getEnv("EMAIL_FROM_ADDRESS", ""),
		ContactInboxAddress: getEnv("CONTACT_INBOX_ADDRESS", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.CatalogBaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL must not be empty")
	}
	if c.NominatimBaseURL == "" {
		return fmt.Errorf("NOMINATIM_BASE_URL must not be empty")
	}
	if c.EmailEnabled {
		if c.SMTPHost == "" || c.EmailFromAddress == "" || c.ContactInboxAddress == "" {
			return fmt.Errorf("EMAIL_ENABLED requires SMTP_HOST, EMAIL_FROM_ADDRESS and CONTACT_INBOX_ADDRESS")
		}
	}
	return nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

func (c *Config) GetNominatimBaseURL() string   { return c.NominatimBaseURL }
func (c *Config) GetGeocodeCountryCode() string { return c.GeocodeCountryCode }
func (c *Config) GetGeocodeCountryName() string { return c.GeocodeCountryName }
func (c *Config) GetGeocodeUserAgent() string   { return c.GeocodeUserAgent }

func (c *Config) GetCatalogBaseURL() string         { return c.CatalogBaseURL }
func (c *Config) GetCatalogCacheTTL() time.Duration { return c.CatalogCacheTTL }

func (c *Config) GetRedisURL() string          { return c.RedisURL }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

func (c *Config) GetEmailEnabled() bool          { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string            { return c.SMTPHost }
func (c *Config) GetSMTPPort() int               { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string        { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string        { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string       { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string    { return c.EmailFromAddress }
func (c *Config) GetContactInboxAddress() string { return c.ContactInboxAddress }

// =============================================================================
// Env helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
