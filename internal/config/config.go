// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Notification backends.
const (
	BackendGmail  = "gmail"
	BackendTwilio = "twilio"
	BackendLog    = "log"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Amadeus       AmadeusConfig       `yaml:"amadeus"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Links         LinksConfig         `yaml:"links"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// BaseURL is the public origin used to build links in notifications.
	BaseURL string `yaml:"base_url"`
}

// DatabaseConfig defines alert store settings.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres, sqlite
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
	Path     string `yaml:"path"` // sqlite file
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// AmadeusConfig defines flight-offers API settings.
type AmadeusConfig struct {
	APIKey      string          `yaml:"api_key"`
	APISecret   string          `yaml:"api_secret"`
	BaseURL     string          `yaml:"base_url"`
	TokenURL    string          `yaml:"token_url"`
	Currency    string          `yaml:"currency"`
	ResultLimit int             `yaml:"result_limit"`
	NonStop     bool            `yaml:"non_stop"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines provider rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ScheduleConfig defines the price check cadence.
type ScheduleConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
	AlertPause    time.Duration `yaml:"alert_pause"`
}

// NotificationsConfig defines notification transports.
type NotificationsConfig struct {
	Email   EmailConfig   `yaml:"email"`
	SMS     SMSConfig     `yaml:"sms"`
	Discord DiscordConfig `yaml:"discord"`
}

// EmailConfig selects and configures the email transport.
type EmailConfig struct {
	Backend string      `yaml:"backend"` // gmail, log
	From    string      `yaml:"from"`
	Gmail   GmailConfig `yaml:"gmail"`
}

// GmailConfig holds OAuth2 refresh-token credentials for the Gmail API.
type GmailConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RefreshToken string `yaml:"refresh_token"`
	Endpoint     string `yaml:"endpoint"`
}

// SMSConfig selects and configures the SMS transport.
type SMSConfig struct {
	Backend    string `yaml:"backend"` // twilio, log
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	From       string `yaml:"from"`
}

// DiscordConfig defines the ops webhook that receives pass reports.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LinksConfig defines signing for links embedded in notifications.
type LinksConfig struct {
	SigningSecret  string        `yaml:"signing_secret"`
	UnsubscribeTTL time.Duration `yaml:"unsubscribe_ttl"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure"`
	ServiceName  string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file next to the config, if present,
// is loaded first; variables already set in the environment win.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAmadeusDefaults(&cfg.Amadeus)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationDefaults(&cfg.Notifications)
	applyLinksDefaults(&cfg.Links)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		// POST /api/v1/check runs a whole pass synchronously.
		s.WriteTimeout = 5 * time.Minute
	}
	if s.BaseURL == "" {
		s.BaseURL = fmt.Sprintf("http://localhost:%d", s.Port)
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = DriverPostgres
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
	if d.Driver == DriverSQLite && d.Path == "" {
		d.Path = "flight-price-tracker.db"
	}
}

func applyAmadeusDefaults(a *AmadeusConfig) {
	if a.BaseURL == "" {
		a.BaseURL = "https://test.api.amadeus.com"
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")
	if a.TokenURL == "" {
		a.TokenURL = a.BaseURL + "/v1/security/oauth2/token"
	}
	if a.Currency == "" {
		a.Currency = "USD"
	}
	if a.ResultLimit == 0 {
		a.ResultLimit = 10
	}
	applyRateLimitDefaults(&a.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10.0
	}
	if r.Burst == 0 {
		r.Burst = 1
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 2000
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CheckInterval == 0 {
		s.CheckInterval = 6 * time.Hour
	}
	if s.AlertPause == 0 {
		s.AlertPause = 2 * time.Second
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if n.Email.Backend == "" {
		n.Email.Backend = BackendLog
	}
	if n.SMS.Backend == "" {
		n.SMS.Backend = BackendLog
	}
}

func applyLinksDefaults(l *LinksConfig) {
	if l.UnsubscribeTTL == 0 {
		l.UnsubscribeTTL = 365 * 24 * time.Hour
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "flight-price-tracker"
	}
	if t.OTLPEndpoint == "" {
		t.OTLPEndpoint = "localhost:4317"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateDatabase(&cfg.Database)...)
	errs = append(errs, validateNotifications(&cfg.Notifications)...)

	if cfg.Links.SigningSecret == "" {
		errs = append(errs, fmt.Errorf("links.signing_secret is required"))
	}
	if cfg.Schedule.AlertPause < 0 {
		errs = append(errs, fmt.Errorf("schedule.alert_pause must not be negative"))
	}

	return errors.Join(errs...)
}

func validateDatabase(d *DatabaseConfig) []error {
	var errs []error

	switch d.Driver {
	case DriverPostgres:
		if d.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required"))
		}
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required"))
		}
		if d.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required"))
		}
	case DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf(
			"database.driver must be one of: postgres, sqlite (got %q)", d.Driver,
		))
	}

	return errs
}

func validateNotifications(n *NotificationsConfig) []error {
	var errs []error

	switch n.Email.Backend {
	case BackendGmail:
		if n.Email.From == "" {
			errs = append(errs, fmt.Errorf("notifications.email.from is required when backend is gmail"))
		}
		if n.Email.Gmail.RefreshToken == "" {
			errs = append(errs,
				fmt.Errorf("notifications.email.gmail.refresh_token is required when backend is gmail"))
		}
	case BackendLog:
	default:
		errs = append(errs, fmt.Errorf(
			"notifications.email.backend must be one of: gmail, log (got %q)", n.Email.Backend,
		))
	}

	switch n.SMS.Backend {
	case BackendTwilio:
		if n.SMS.AccountSID == "" || n.SMS.AuthToken == "" {
			errs = append(errs, fmt.Errorf(
				"notifications.sms.account_sid and auth_token are required when backend is twilio",
			))
		}
		if n.SMS.From == "" {
			errs = append(errs, fmt.Errorf("notifications.sms.from is required when backend is twilio"))
		}
	case BackendLog:
	default:
		errs = append(errs, fmt.Errorf(
			"notifications.sms.backend must be one of: twilio, log (got %q)", n.SMS.Backend,
		))
	}

	if n.Discord.Enabled && n.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when enabled"))
	}

	return errs
}
