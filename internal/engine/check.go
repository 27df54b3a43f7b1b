package engine

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/flight-price-tracker/internal/metrics"
	"github.com/donaldgifford/flight-price-tracker/internal/notify"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// CheckAlert evaluates one alert and applies the resulting store mutation.
// Exactly one of expire-and-delete, notify-and-ratchet or touch-last-checked
// happens; any failure yields a Skipped outcome instead.
func (e *Engine) CheckAlert(ctx context.Context, alert *domain.Alert) domain.Outcome {
	ctx, span := e.tracer.Start(ctx, "engine.CheckAlert",
		withAlertAttrs(alert))
	defer span.End()

	out := e.decide(ctx, alert)

	span.SetAttributes(attribute.String("outcome", string(out.Kind)))
	metrics.AlertOutcomesTotal.WithLabelValues(string(out.Kind)).Inc()
	if out.Kind == domain.OutcomeSkipped {
		metrics.AlertSkipsTotal.WithLabelValues(string(out.Reason)).Inc()
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, string(out.Reason))
		e.log.Warn("alert skipped",
			"alert_id", alert.ID,
			"reason", out.Reason,
			"error", out.Err,
		)
	}
	return out
}

func (e *Engine) decide(ctx context.Context, alert *domain.Alert) domain.Outcome {
	if alert.DepartureDate.IsZero() {
		return domain.Skipped(alert.ID, domain.SkipData, alert.Validate())
	}

	today := domain.DateOf(e.now())
	if alert.DepartureDate.Before(today) {
		return e.expire(ctx, alert)
	}

	if err := alert.Validate(); err != nil {
		return domain.Skipped(alert.ID, domain.SkipData, err)
	}

	offers, err := e.provider.SearchOffers(ctx, alert.SearchRequest(e.resultLimit))
	if err != nil {
		return domain.Skipped(alert.ID, domain.SkipProvider, fmt.Errorf("searching offers: %w", err))
	}

	// Offers arrive cheapest first, so the first one under the threshold is
	// the lowest qualifying price.
	for i := range offers {
		if offers[i].Price.LessThan(alert.PriceThreshold) {
			return e.notifyAndRatchet(ctx, alert, &offers[i])
		}
	}

	if err := e.store.UpdateLastChecked(ctx, alert.ID, e.now()); err != nil {
		return domain.Skipped(alert.ID, domain.SkipStore, err)
	}
	e.log.Debug("no qualifying price",
		"alert_id", alert.ID,
		"offers", len(offers),
		"threshold", alert.PriceThreshold.String(),
	)
	return domain.NoChange(alert.ID)
}

// expire sends best-effort expiry notices to every stored contact, verified
// or not, then deletes the alert.
func (e *Engine) expire(ctx context.Context, alert *domain.Alert) domain.Outcome {
	details := alert.Details()
	if alert.Email != "" {
		e.notifier.NotifyExpired(ctx, notify.EmailContact(alert.Email), details)
	}
	if alert.Phone != "" {
		e.notifier.NotifyExpired(ctx, notify.SMSContact(alert.Phone), details)
	}

	if err := e.store.DeleteAlert(ctx, alert.ID); err != nil {
		return domain.Skipped(alert.ID, domain.SkipStore, err)
	}
	e.log.Info("alert expired",
		"alert_id", alert.ID,
		"departure", alert.DepartureDate.String(),
	)
	return domain.Expired(alert.ID)
}

// notifyAndRatchet notifies the verified channels and lowers the threshold
// to the offer's price whether or not either send succeeded.
func (e *Engine) notifyAndRatchet(ctx context.Context, alert *domain.Alert, offer *domain.Offer) domain.Outcome {
	details := alert.Details()
	var emailSent, smsSent bool
	if alert.Email != "" && alert.EmailVerified {
		emailSent = e.notifier.NotifyPriceDrop(ctx, notify.EmailContact(alert.Email), details, *offer)
	}
	if alert.Phone != "" && alert.PhoneVerified {
		smsSent = e.notifier.NotifyPriceDrop(ctx, notify.SMSContact(alert.Phone), details, *offer)
	}

	threshold := ratchetPrice(offer.Price)
	if err := e.store.UpdatePriceThreshold(ctx, alert.ID, threshold); err != nil {
		return domain.Skipped(alert.ID, domain.SkipStore, err)
	}
	e.log.Info("price drop",
		"alert_id", alert.ID,
		"old_threshold", alert.PriceThreshold.String(),
		"new_threshold", threshold.String(),
		"airline", offer.Airline,
		"email_sent", emailSent,
		"sms_sent", smsSent,
	)
	return domain.NotifiedAndRatcheted(alert.ID, threshold)
}

// ratchetPrice is the threshold stored after a drop: the offer price cut to
// whole cents. Truncating keeps it at or below the offer, so the same offer
// never qualifies again.
func ratchetPrice(p decimal.Decimal) decimal.Decimal {
	return p.Truncate(2)
}
