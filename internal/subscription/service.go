// Package subscription implements the alert lifecycle outside the price
// check: creation, contact verification, unsubscribe and deactivation.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/donaldgifford/flight-price-tracker/internal/notify"
	"github.com/donaldgifford/flight-price-tracker/internal/store"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// ErrInvalidCode is returned when a phone verification code does not match
// or no verification is pending.
var ErrInvalidCode = errors.New("invalid verification code")

// TokenVerifier resolves a signed unsubscribe token to an alert ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Service coordinates the store and notifier for subscription flows.
type Service struct {
	store    store.Store
	notifier notify.Notifier
	verifier notify.Verifier
	tokens   TokenVerifier
	log      *slog.Logger
	now      func() time.Time
	random   io.Reader
	cost     int

	maxCodeAttempts int
	codeTTL         time.Duration
}

const (
	defaultMaxCodeAttempts = 5
	defaultCodeTTL         = 24 * time.Hour
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithClock sets the clock used to reject past departure dates.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		s.now = fn
	}
}

// WithRandom sets the entropy source for tokens and codes.
func WithRandom(r io.Reader) Option {
	return func(s *Service) {
		s.random = r
	}
}

// WithBcryptCost sets the cost used to hash phone codes.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

// WithPhoneCodeLimits bounds phone verification. A code is discarded after
// maxAttempts guesses or once it is older than ttl, whichever comes first.
func WithPhoneCodeLimits(maxAttempts int, ttl time.Duration) Option {
	return func(s *Service) {
		if maxAttempts > 0 {
			s.maxCodeAttempts = maxAttempts
		}
		if ttl > 0 {
			s.codeTTL = ttl
		}
	}
}

// NewService creates a Service.
func NewService(
	st store.Store,
	notifier notify.Notifier,
	verifier notify.Verifier,
	tokens TokenVerifier,
	opts ...Option,
) *Service {
	s := &Service{
		store:    st,
		notifier: notifier,
		verifier: verifier,
		tokens:   tokens,
		log:      slog.Default(),
		now:      time.Now,
		random:   randReader,
		cost:     bcrypt.DefaultCost,

		maxCodeAttempts: defaultMaxCodeAttempts,
		codeTTL:         defaultCodeTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Created reports a new alert and which verification messages went out.
type Created struct {
	Alert                 *domain.Alert
	VerificationEmailSent bool
	VerificationSMSSent   bool
}

// Create validates and stores a new alert, then sends a verification
// message to each contact. The alert is active but not eligible for price
// checks until a contact is verified.
func (s *Service) Create(ctx context.Context, in *NewAlert) (*Created, error) {
	alert, err := in.normalize(domain.DateOf(s.now()))
	if err != nil {
		return nil, err
	}

	var code string
	if alert.Email != "" {
		if alert.EmailToken, err = newEmailToken(s.random); err != nil {
			return nil, err
		}
	}
	if alert.Phone != "" {
		if code, err = newPhoneCode(s.random); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(code), s.cost)
		if err != nil {
			return nil, fmt.Errorf("hashing phone code: %w", err)
		}
		alert.PhoneCodeHash = string(hash)
	}

	if err := s.store.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("creating alert: %w", err)
	}

	out := &Created{Alert: alert}
	log := s.log.With("alert_id", alert.ID)

	if alert.Email != "" {
		if err := s.verifier.SendVerificationEmail(ctx, alert.Email, alert.EmailToken, alert.Details()); err != nil {
			log.Warn("verification email failed", "error", err)
		} else {
			out.VerificationEmailSent = true
		}
	}
	if alert.Phone != "" {
		if err := s.verifier.SendVerificationSMS(ctx, alert.Phone, code); err != nil {
			log.Warn("verification sms failed", "error", err)
		} else {
			out.VerificationSMSSent = true
		}
	}

	log.Info("alert created",
		"route", alert.Origin+"-"+alert.Destination,
		"departure", alert.DepartureDate.String(),
	)
	return out, nil
}

// VerifyEmail marks the email contact of the alert holding token verified
// and sends the activation notice.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*domain.Alert, error) {
	if token == "" {
		return nil, fmt.Errorf("verifying email: %w", store.ErrNotFound)
	}

	alert, err := s.store.GetAlertByEmailToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("verifying email: %w", err)
	}
	if err := s.store.SetEmailVerified(ctx, alert.ID); err != nil {
		return nil, fmt.Errorf("verifying email: %w", err)
	}
	alert.EmailVerified = true
	alert.EmailToken = ""

	s.notifier.NotifyActivated(ctx, notify.EmailContact(alert.Email), alert.Details())
	s.log.Info("email verified", "alert_id", alert.ID)
	return alert, nil
}

// VerifyPhone checks code against the stored hash, marks the phone contact
// verified and sends the activation notice. Each call spends one attempt
// before the hash is compared; the code is discarded once attempts run out
// or it has expired.
func (s *Service) VerifyPhone(ctx context.Context, alertID, code string) (*domain.Alert, error) {
	alert, err := s.store.GetAlert(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("verifying phone: %w", err)
	}
	if alert.Phone == "" || alert.PhoneCodeHash == "" {
		return nil, fmt.Errorf("%w: no verification pending", ErrInvalidCode)
	}

	log := s.log.With("alert_id", alert.ID)

	if s.now().Sub(alert.CreatedAt) > s.codeTTL {
		s.discardPhoneCode(ctx, log, alert.ID, "expired")
		return nil, fmt.Errorf("%w: code expired", ErrInvalidCode)
	}

	attempts, err := s.store.RecordPhoneCodeAttempt(ctx, alert.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: no verification pending", ErrInvalidCode)
	}
	if err != nil {
		return nil, fmt.Errorf("verifying phone: %w", err)
	}
	if attempts > s.maxCodeAttempts {
		s.discardPhoneCode(ctx, log, alert.ID, "too many attempts")
		return nil, fmt.Errorf("%w: too many attempts", ErrInvalidCode)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(alert.PhoneCodeHash), []byte(code)); err != nil {
		if attempts == s.maxCodeAttempts {
			s.discardPhoneCode(ctx, log, alert.ID, "too many attempts")
		}
		return nil, ErrInvalidCode
	}

	if err := s.store.SetPhoneVerified(ctx, alert.ID); err != nil {
		return nil, fmt.Errorf("verifying phone: %w", err)
	}
	alert.PhoneVerified = true
	alert.PhoneCodeHash = ""

	s.notifier.NotifyActivated(ctx, notify.SMSContact(alert.Phone), alert.Details())
	log.Info("phone verified")
	return alert, nil
}

func (s *Service) discardPhoneCode(ctx context.Context, log *slog.Logger, id, reason string) {
	if err := s.store.ClearPhoneCode(ctx, id); err != nil {
		log.Warn("clearing phone code failed", "error", err)
		return
	}
	log.Warn("phone code discarded", "reason", reason)
}

// Unsubscribe deletes the alert named by a signed token after notifying
// its verified contacts.
func (s *Service) Unsubscribe(ctx context.Context, token string) (*domain.Alert, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("unsubscribing: %w", err)
	}

	alert, err := s.store.GetAlert(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unsubscribing: %w", err)
	}

	details := alert.Details()
	if alert.Email != "" && alert.EmailVerified {
		s.notifier.NotifyDeleted(ctx, notify.EmailContact(alert.Email), details)
	}
	if alert.Phone != "" && alert.PhoneVerified {
		s.notifier.NotifyDeleted(ctx, notify.SMSContact(alert.Phone), details)
	}

	if err := s.store.DeleteAlert(ctx, alert.ID); err != nil {
		return nil, fmt.Errorf("unsubscribing: %w", err)
	}

	s.log.Info("alert unsubscribed", "alert_id", alert.ID)
	return alert, nil
}

// Deactivate soft-disables an alert. It stays stored but is never checked.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	if err := s.store.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("deactivating alert: %w", err)
	}
	s.log.Info("alert deactivated", "alert_id", id)
	return nil
}

// Get returns one alert.
func (s *Service) Get(ctx context.Context, id string) (*domain.Alert, error) {
	a, err := s.store.GetAlert(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting alert: %w", err)
	}
	return a, nil
}

// List returns a page of alerts and the total match count.
func (s *Service) List(ctx context.Context, q *store.AlertQuery) ([]domain.Alert, int, error) {
	alerts, total, err := s.store.ListAlerts(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing alerts: %w", err)
	}
	return alerts, total, nil
}
