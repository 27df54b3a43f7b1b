package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PassesByStatus returns a timeseries panel counting completed price check
// passes per hour by final status.
func PassesByStatus() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Passes").
		Description("Price check passes per hour by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(fpt_passes_total{job="flight-price-tracker"}[1h])) by (status)`,
			"{{status}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// PassDuration returns a timeseries panel showing p50 and p95 pass wall time.
func PassDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Pass Duration").
		Description("Wall time of a full price check pass").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(fpt_pass_duration_seconds_bucket{job="flight-price-tracker"}[6h])) by (le))`,
			"p50", "A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(fpt_pass_duration_seconds_bucket{job="flight-price-tracker"}[6h])) by (le))`,
			"p95", "B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EligibleAlerts returns a stat panel showing how many alerts the last pass
// checked.
func EligibleAlerts() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Eligible Alerts").
		Description("Active, verified alerts loaded by the last pass").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`fpt_pass_eligible_alerts{job="flight-price-tracker"}`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// OutcomesByKind returns a timeseries panel of per-alert outcomes.
func OutcomesByKind() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Alert Outcomes").
		Description("Per-alert results per hour: notified, no_change, expired, skipped").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`fpt:alert_outcomes:rate1h`, "{{kind}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// SkipsByReason returns a timeseries panel breaking skipped alerts down by
// cause.
func SkipsByReason() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Skips by Reason").
		Description("Alerts skipped for the pass because of store, provider or data errors").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(fpt_alert_skips_total{job="flight-price-tracker"}[1h])) by (reason)`,
			"{{reason}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
