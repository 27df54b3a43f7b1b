// Package engine runs price-check passes: for each eligible alert it expires,
// notifies and ratchets, or records a no-change check.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/flight-price-tracker/internal/metrics"
	"github.com/donaldgifford/flight-price-tracker/internal/notify"
	"github.com/donaldgifford/flight-price-tracker/internal/store"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

const (
	defaultAlertPause  = 2 * time.Second
	defaultResultLimit = 10
	instrumentation    = "github.com/donaldgifford/flight-price-tracker/internal/engine"
)

// ErrPassInProgress is returned by RunPass while another pass is running.
var ErrPassInProgress = errors.New("pass already in progress")

// PriceProvider searches current fares, cheapest first.
type PriceProvider interface {
	SearchOffers(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error)
}

// Reporter receives a summary after every pass.
type Reporter interface {
	ReportPass(ctx context.Context, s *domain.PassSummary) error
}

// Engine runs price-check passes over eligible alerts.
type Engine struct {
	store    store.Store
	provider PriceProvider
	notifier notify.Notifier
	reporter Reporter
	log      *slog.Logger
	tracer   trace.Tracer

	alertPause  time.Duration
	resultLimit int
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error

	mu      sync.Mutex
	running bool
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	p PriceProvider,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		provider:    p,
		notifier:    n,
		log:         slog.Default(),
		tracer:      otel.Tracer(instrumentation),
		alertPause:  defaultAlertPause,
		resultLimit: defaultResultLimit,
		now:         time.Now,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithAlertPause sets the fixed delay between alerts in a pass.
func WithAlertPause(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.alertPause = d
	}
}

// WithResultLimit sets how many offers are requested per alert.
func WithResultLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.resultLimit = n
		}
	}
}

// WithClock sets the clock used for expiry and timestamps.
func WithClock(fn func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = fn
	}
}

// WithReporter sets where pass summaries are posted.
func WithReporter(r Reporter) EngineOption {
	return func(e *Engine) {
		e.reporter = r
	}
}

// RunPass checks every eligible alert once, oldest first, pausing between
// alerts. A failure on one alert is recorded in its outcome and never stops
// the pass. Cancelling ctx stops the pass before the next alert.
func (e *Engine) RunPass(ctx context.Context) (*domain.PassSummary, error) {
	if !e.acquire() {
		metrics.PassesSkippedTotal.Inc()
		return nil, ErrPassInProgress
	}
	defer e.release()

	ctx, span := e.tracer.Start(ctx, "engine.RunPass")
	defer span.End()

	summary := &domain.PassSummary{StartedAt: e.now()}
	log := e.log

	runID, err := e.store.InsertPassRun(ctx, summary.StartedAt)
	if err != nil {
		log.Warn("recording pass start failed", "error", err)
	} else {
		summary.RunID = runID
		log = log.With("run_id", runID)
	}
	log.Info("price check pass starting")

	alerts, err := e.store.ListEligibleAlerts(ctx)
	if err != nil {
		err = fmt.Errorf("listing eligible alerts: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing eligible alerts")
		e.finish(ctx, log, summary, domain.PassFailed, err)
		return summary, err
	}

	summary.Eligible = len(alerts)
	metrics.PassEligibleAlerts.Set(float64(len(alerts)))
	span.SetAttributes(attribute.Int("pass.eligible", len(alerts)))

	for i := range alerts {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}

		summary.Record(e.CheckAlert(ctx, &alerts[i]))

		if i < len(alerts)-1 && e.alertPause > 0 {
			if err := e.sleep(ctx, e.alertPause); err != nil {
				summary.Interrupted = true
				break
			}
		}
	}

	status := domain.PassSucceeded
	if summary.Interrupted {
		status = domain.PassInterrupted
		log.Warn("price check pass interrupted",
			"processed", summary.Processed(),
			"eligible", summary.Eligible,
		)
	}
	e.finish(ctx, log, summary, status, nil)
	return summary, nil
}

// finish completes the pass record, metrics and report. It runs detached
// from ctx cancellation so an interrupted pass is still recorded.
func (e *Engine) finish(
	ctx context.Context,
	log *slog.Logger,
	summary *domain.PassSummary,
	status string,
	passErr error,
) {
	ctx = context.WithoutCancel(ctx)
	summary.CompletedAt = e.now()
	elapsed := summary.CompletedAt.Sub(summary.StartedAt)

	metrics.PassesTotal.WithLabelValues(status).Inc()
	metrics.PassDuration.Observe(elapsed.Seconds())

	if summary.RunID != "" {
		errText := ""
		if passErr != nil {
			errText = passErr.Error()
		}
		if err := e.store.CompletePassRun(ctx, summary.RunID, status, errText, summary); err != nil {
			log.Warn("recording pass completion failed", "error", err)
		}
	}

	if e.reporter != nil {
		if err := e.reporter.ReportPass(ctx, summary); err != nil {
			log.Warn("pass report failed", "error", err)
		}
	}

	if passErr != nil {
		log.Error("price check pass failed", "error", passErr, "duration", elapsed)
		return
	}
	log.Info("price check pass complete",
		"status", status,
		"eligible", summary.Eligible,
		"notified", summary.Notified,
		"no_change", summary.NoChange,
		"expired", summary.Expired,
		"skipped", summary.Skipped,
		"duration", elapsed,
	)
}

func (e *Engine) acquire() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return false
	}
	e.running = true
	return true
}

func (e *Engine) release() {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

// Running reports whether a pass is in progress.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
