package main

import "errors"

// KnownMetrics is the set of metric names exported by flight-price-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"fpt_http_request_duration_seconds": true,
	"fpt_http_requests_total":           true,
	"fpt_http_panics_total":             true,

	// Health metrics.
	"fpt_healthz_up": true,
	"fpt_readyz_up":  true,

	// Pass metrics.
	"fpt_passes_total":          true,
	"fpt_pass_duration_seconds": true,
	"fpt_pass_eligible_alerts":  true,
	"fpt_passes_skipped_total":  true,
	"fpt_alert_outcomes_total":  true,
	"fpt_alert_skips_total":     true,

	// Price provider metrics.
	"fpt_provider_calls_total":            true,
	"fpt_provider_errors_total":           true,
	"fpt_provider_daily_usage":            true,
	"fpt_provider_daily_limit_hits_total": true,

	// Notification metrics.
	"fpt_notifications_sent_total":           true,
	"fpt_notification_failures_total":        true,
	"fpt_notification_send_duration_seconds": true,

	// Recording rules.
	"fpt:http_requests:rate5m":         true,
	"fpt:http_errors:rate5m":           true,
	"fpt:provider_calls:rate5m":        true,
	"fpt:provider_errors:rate5m":       true,
	"fpt:alert_outcomes:rate1h":        true,
	"fpt:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
