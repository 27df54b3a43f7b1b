// Package notify delivers alert lifecycle messages over email and SMS, and
// posts pass reports to an ops webhook.
package notify

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// Channel identifies a delivery medium.
type Channel string

// Supported channels.
const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Kind identifies which lifecycle message is being sent.
type Kind string

// Message kinds.
const (
	KindPriceDrop    Kind = "price_drop"
	KindExpired      Kind = "expired"
	KindActivated    Kind = "activated"
	KindDeleted      Kind = "deleted"
	KindVerification Kind = "verification"
)

// ErrMalformedContact is wrapped by Contact.Validate failures.
var ErrMalformedContact = errors.New("malformed contact")

// Contact is a single addressable destination.
type Contact struct {
	Channel Channel
	Address string
}

// EmailContact is shorthand for an email Contact.
func EmailContact(addr string) Contact {
	return Contact{Channel: ChannelEmail, Address: addr}
}

// SMSContact is shorthand for an SMS Contact.
func SMSContact(phone string) Contact {
	return Contact{Channel: ChannelSMS, Address: phone}
}

// Validate rejects an empty address or unknown channel.
func (c Contact) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("%w: empty %s address", ErrMalformedContact, c.Channel)
	}
	switch c.Channel {
	case ChannelEmail, ChannelSMS:
		return nil
	default:
		return fmt.Errorf("%w: unknown channel %q", ErrMalformedContact, c.Channel)
	}
}

// Notifier sends alert lifecycle messages. Each call reports delivery
// success; failures are logged and counted, never returned.
type Notifier interface {
	NotifyPriceDrop(ctx context.Context, c Contact, alert domain.AlertDetails, offer domain.Offer) bool
	NotifyExpired(ctx context.Context, c Contact, alert domain.AlertDetails) bool
	NotifyActivated(ctx context.Context, c Contact, alert domain.AlertDetails) bool
	NotifyDeleted(ctx context.Context, c Contact, alert domain.AlertDetails) bool
}

// Verifier sends the one-off messages that confirm a contact.
type Verifier interface {
	SendVerificationEmail(ctx context.Context, to, token string, alert domain.AlertDetails) error
	SendVerificationSMS(ctx context.Context, to, code string) error
}

// Email is a rendered outbound email.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer is an email transport.
type Mailer interface {
	SendEmail(ctx context.Context, msg Email) error
}

// TextSender is an SMS transport.
type TextSender interface {
	SendText(ctx context.Context, to, body string) error
}

// Links renders the public URLs embedded in messages.
type Links interface {
	Search(d *domain.AlertDetails) string
	Unsubscribe(alertID string) (string, error)
	VerifyEmail(token string) string
	Home() string
}
