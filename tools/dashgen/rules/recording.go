package rules

// RecordingRules returns the pre-computed rates the dashboard and alert
// rules read.
func RecordingRules() PrometheusRule {
	return newRule("fpt-recording", "-rules",
		record("fpt:http_requests:rate5m",
			`sum(rate(fpt_http_requests_total[5m]))`),
		record("fpt:http_errors:rate5m",
			`sum(rate(fpt_http_requests_total{status=~"5.."}[5m]))`),
		record("fpt:provider_calls:rate5m",
			`rate(fpt_provider_calls_total[5m])`),
		record("fpt:provider_errors:rate5m",
			`rate(fpt_provider_errors_total[5m])`),
		record("fpt:alert_outcomes:rate1h",
			`sum(increase(fpt_alert_outcomes_total[1h])) by (kind)`),
		record("fpt:notification_failures:rate5m",
			`sum(rate(fpt_notification_failures_total[5m])) by (channel)`),
	)
}
