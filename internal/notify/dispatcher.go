package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/flight-price-tracker/internal/metrics"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// message is the channel-specific rendering of one notification. Email uses
// subject and html; SMS uses text.
type message struct {
	subject string
	html    string
	text    string
}

// Dispatcher implements Notifier and Verifier by routing email contacts to a
// Mailer and SMS contacts to a TextSender.
type Dispatcher struct {
	mailer Mailer
	texter TextSender
	links  Links
	log    *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(mailer Mailer, texter TextSender, links Links, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		texter: texter,
		links:  links,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NotifyPriceDrop implements Notifier.
func (d *Dispatcher) NotifyPriceDrop(
	ctx context.Context,
	c Contact,
	alert domain.AlertDetails,
	offer domain.Offer,
) bool {
	return d.deliver(ctx, c, KindPriceDrop, alert.AlertID, func() (message, error) {
		if c.Channel == ChannelSMS {
			return message{text: priceDropText(&alert, &offer)}, nil
		}
		unsubscribe, err := d.links.Unsubscribe(alert.AlertID)
		if err != nil {
			return message{}, err
		}
		html, err := render(ctx, priceDropEmail(&alert, &offer, d.links.Search(&alert), unsubscribe))
		return message{subject: priceDropSubject(&alert, &offer), html: html}, err
	})
}

// NotifyExpired implements Notifier.
func (d *Dispatcher) NotifyExpired(ctx context.Context, c Contact, alert domain.AlertDetails) bool {
	return d.deliver(ctx, c, KindExpired, alert.AlertID, func() (message, error) {
		if c.Channel == ChannelSMS {
			return message{text: expiredText(&alert)}, nil
		}
		html, err := render(ctx, expiredEmail(&alert, d.links.Home()))
		return message{subject: expiredSubject(&alert), html: html}, err
	})
}

// NotifyActivated implements Notifier.
func (d *Dispatcher) NotifyActivated(ctx context.Context, c Contact, alert domain.AlertDetails) bool {
	return d.deliver(ctx, c, KindActivated, alert.AlertID, func() (message, error) {
		unsubscribe, err := d.links.Unsubscribe(alert.AlertID)
		if err != nil {
			return message{}, err
		}
		if c.Channel == ChannelSMS {
			return message{text: activatedText(&alert, unsubscribe)}, nil
		}
		html, err := render(ctx, activatedEmail(&alert, d.links.Search(&alert), unsubscribe))
		return message{subject: activatedSubject(&alert), html: html}, err
	})
}

// NotifyDeleted implements Notifier.
func (d *Dispatcher) NotifyDeleted(ctx context.Context, c Contact, alert domain.AlertDetails) bool {
	return d.deliver(ctx, c, KindDeleted, alert.AlertID, func() (message, error) {
		if c.Channel == ChannelSMS {
			return message{text: deletedText(&alert)}, nil
		}
		html, err := render(ctx, deletedEmail(&alert, d.links.Home()))
		return message{subject: deletedSubject(&alert), html: html}, err
	})
}

// SendVerificationEmail implements Verifier.
func (d *Dispatcher) SendVerificationEmail(
	ctx context.Context,
	to, token string,
	alert domain.AlertDetails,
) error {
	c := EmailContact(to)
	if err := validate(c, KindVerification); err != nil {
		return err
	}
	html, err := render(ctx, verificationEmail(&alert, d.links.VerifyEmail(token)))
	if err != nil {
		return err
	}
	return d.send(ctx, c, KindVerification, message{subject: verificationSubject, html: html})
}

// SendVerificationSMS implements Verifier.
func (d *Dispatcher) SendVerificationSMS(ctx context.Context, to, code string) error {
	c := SMSContact(to)
	if err := validate(c, KindVerification); err != nil {
		return err
	}
	return d.send(ctx, c, KindVerification, message{text: verificationText(code)})
}

func (d *Dispatcher) deliver(
	ctx context.Context,
	c Contact,
	kind Kind,
	alertID string,
	build func() (message, error),
) bool {
	log := d.log.With("channel", c.Channel, "kind", kind, "alert_id", alertID)

	if err := validate(c, kind); err != nil {
		log.Warn("skipping notification", "error", err)
		return false
	}

	msg, err := build()
	if err != nil {
		log.Error("building notification", "error", err)
		metrics.NotificationFailuresTotal.WithLabelValues(string(c.Channel), string(kind)).Inc()
		return false
	}

	if err := d.send(ctx, c, kind, msg); err != nil {
		log.Error("notification failed", "error", err)
		return false
	}

	log.Info("notification sent")
	return true
}

// validate counts a malformed contact as a failed notification.
func validate(c Contact, kind Kind) error {
	if err := c.Validate(); err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(string(c.Channel), string(kind)).Inc()
		return err
	}
	return nil
}

// send delivers msg to an already validated contact and records metrics for
// the attempt.
func (d *Dispatcher) send(ctx context.Context, c Contact, kind Kind, msg message) error {
	start := time.Now()
	var err error
	switch c.Channel {
	case ChannelEmail:
		err = d.mailer.SendEmail(ctx, Email{To: c.Address, Subject: msg.subject, HTML: msg.html})
	case ChannelSMS:
		err = d.texter.SendText(ctx, c.Address, msg.text)
	}
	metrics.NotificationSendDuration.WithLabelValues(string(c.Channel)).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(string(c.Channel), string(kind)).Inc()
		return fmt.Errorf("sending %s %s: %w", kind, c.Channel, err)
	}
	metrics.NotificationsSentTotal.WithLabelValues(string(c.Channel), string(kind)).Inc()
	return nil
}
