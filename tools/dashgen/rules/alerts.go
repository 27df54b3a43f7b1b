package rules

import (
	"fmt"

	"github.com/donaldgifford/flight-price-tracker/tools/dashgen/panels"
)

// quotaWarnRatio is the share of the daily search limit that triggers
// FptQuotaHigh.
const quotaWarnRatio = 0.8

// AlertRules returns the operational alerts for flight-price-tracker.
func AlertRules() PrometheusRule {
	quotaWarn := int(float64(panels.ProviderDailyLimit) * quotaWarnRatio)

	return newRule("fpt-alerts", "",
		alert("FptDown",
			fmt.Sprintf(`absent(up{job=%q})`, Job), "2m", SeverityCritical,
			"Flight Price Tracker is down",
			"The flight-price-tracker job has been absent for more than 2 minutes."),
		alert("FptReadinessDown",
			`fpt_readyz_up == 0`, "2m", SeverityCritical,
			"Flight Price Tracker readiness check is failing",
			"The readiness probe has been reporting not-ready for more than 2 minutes."),
		alert("FptHighErrorRate",
			`fpt:http_errors:rate5m / fpt:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
			"High HTTP error rate on Flight Price Tracker",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("FptPassFailed",
			`increase(fpt_passes_total{status="failed"}[1h]) > 0`, "", SeverityCritical,
			"A price check pass failed",
			"A pass could not load eligible alerts. No prices were checked and no notifications were sent."),
		alert("FptNoRecentPass",
			`sum(increase(fpt_passes_total[13h])) == 0`, "10m", SeverityWarning,
			"No price check pass has completed recently",
			"No pass completed in the last 13 hours, two default check intervals."),
		alert("FptProviderSkips",
			`sum(increase(fpt_alert_skips_total{reason="provider"}[1h])) > 10`, "", SeverityWarning,
			"Alerts are being skipped on flight search errors",
			"More than 10 alerts were skipped in the last hour because the flight search API failed."),
		alert("FptQuotaHigh",
			fmt.Sprintf(`fpt_provider_daily_usage > %d`, quotaWarn), "5m", SeverityWarning,
			"Flight search daily usage is above 80% of the quota",
			fmt.Sprintf("Daily flight searches have exceeded %d calls (default limit is %d).",
				quotaWarn, panels.ProviderDailyLimit)),
		alert("FptQuotaExhausted",
			`increase(fpt_provider_daily_limit_hits_total[5m]) > 0`, "", SeverityCritical,
			"Flight search daily limit has been reached",
			"The daily search quota is exhausted. Remaining alerts are skipped until it resets."),
		alert("FptNotificationFailures",
			`fpt:notification_failures:rate5m > 0`, "5m", SeverityWarning,
			"Notification delivery failures detected",
			"Email or SMS sends have been failing for more than 5 minutes."),
	)
}
