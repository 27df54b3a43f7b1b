package subscription_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/donaldgifford/flight-price-tracker/internal/links"
	"github.com/donaldgifford/flight-price-tracker/internal/notify"
	notifymocks "github.com/donaldgifford/flight-price-tracker/internal/notify/mocks"
	"github.com/donaldgifford/flight-price-tracker/internal/store"
	storemocks "github.com/donaldgifford/flight-price-tracker/internal/store/mocks"
	"github.com/donaldgifford/flight-price-tracker/internal/subscription"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

var today = time.Date(2030, 5, 1, 15, 0, 0, 0, time.UTC)

type fixture struct {
	store    *storemocks.MockStore
	notifier *notifymocks.MockNotifier
	verifier *notifymocks.MockVerifier
	signer   *links.Signer
	svc      *subscription.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:    storemocks.NewMockStore(t),
		notifier: notifymocks.NewMockNotifier(t),
		verifier: notifymocks.NewMockVerifier(t),
		signer:   links.NewSigner("secret", 0),
	}
	f.svc = subscription.NewService(f.store, f.notifier, f.verifier, f.signer,
		subscription.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		subscription.WithClock(func() time.Time { return today }),
		subscription.WithBcryptCost(bcrypt.MinCost),
	)
	return f
}

func validRequest() *subscription.NewAlert {
	rd := domain.NewDate(2030, 6, 10)
	return &subscription.NewAlert{
		Origin:         " lax ",
		Destination:    "jfk",
		DepartureDate:  domain.NewDate(2030, 6, 1),
		ReturnDate:     &rd,
		TripType:       domain.TripRoundTrip,
		PriceThreshold: decimal.RequireFromString("500"),
		Email:          "Traveler@Example.com",
		Phone:          "+1 (555) 010-0100",
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	var stored *domain.Alert
	f.store.EXPECT().
		CreateAlert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.Alert) {
			a.ID = "alert-1"
			stored = a
		}).
		Return(nil).
		Once()

	var emailToken string
	f.verifier.EXPECT().
		SendVerificationEmail(mock.Anything, "traveler@example.com", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _, token string, d domain.AlertDetails) {
			emailToken = token
			assert.Equal(t, "alert-1", d.AlertID)
		}).
		Return(nil).
		Once()

	var code string
	f.verifier.EXPECT().
		SendVerificationSMS(mock.Anything, "+15550100100", mock.Anything).
		Run(func(_ context.Context, _, c string) { code = c }).
		Return(nil).
		Once()

	out, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, out.VerificationEmailSent)
	assert.True(t, out.VerificationSMSSent)

	require.NotNil(t, stored)
	assert.Equal(t, "LAX", stored.Origin)
	assert.Equal(t, "JFK", stored.Destination)
	assert.True(t, stored.IsActive)
	assert.False(t, stored.EmailVerified)
	assert.False(t, stored.PhoneVerified)
	assert.False(t, stored.Eligible())

	assert.Len(t, emailToken, 43)
	assert.Equal(t, emailToken, stored.EmailToken)

	require.Len(t, code, 6)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PhoneCodeHash), []byte(code)))
}

func TestService_Create_VerificationFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	req := validRequest()
	req.Phone = ""

	f.store.EXPECT().CreateAlert(mock.Anything, mock.Anything).Return(nil).Once()
	f.verifier.EXPECT().
		SendVerificationEmail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("gmail down")).
		Once()

	out, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, out.VerificationEmailSent)
	assert.Empty(t, out.Alert.PhoneCodeHash)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*subscription.NewAlert)
		errMsg string
	}{
		{name: "bad origin", mutate: func(n *subscription.NewAlert) { n.Origin = "LA" }, errMsg: "3-letter airport code"},
		{name: "same airports", mutate: func(n *subscription.NewAlert) { n.Destination = "LAX" }, errMsg: "must differ"},
		{name: "past departure", mutate: func(n *subscription.NewAlert) {
			n.DepartureDate = domain.NewDate(2030, 4, 30)
		}, errMsg: "in the past"},
		{name: "return before departure", mutate: func(n *subscription.NewAlert) {
			rd := domain.NewDate(2030, 5, 20)
			n.ReturnDate = &rd
		}, errMsg: "on or after departure"},
		{name: "round trip missing return", mutate: func(n *subscription.NewAlert) { n.ReturnDate = nil }, errMsg: "need a return date"},
		{name: "one way with return", mutate: func(n *subscription.NewAlert) { n.TripType = domain.TripOneWay }, errMsg: "cannot have a return date"},
		{name: "unknown trip type", mutate: func(n *subscription.NewAlert) { n.TripType = "multi-city" }, errMsg: "trip type must be"},
		{name: "zero threshold", mutate: func(n *subscription.NewAlert) { n.PriceThreshold = decimal.Zero }, errMsg: "greater than zero"},
		{name: "no contact", mutate: func(n *subscription.NewAlert) { n.Email, n.Phone = "", "" }, errMsg: "email or phone"},
		{name: "bad email", mutate: func(n *subscription.NewAlert) { n.Email = "not-an-email" }, errMsg: "email"},
		{name: "bad phone", mutate: func(n *subscription.NewAlert) { n.Phone = "5550100" }, errMsg: "E.164"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			req := validRequest()
			tt.mutate(req)

			_, err := f.svc.Create(context.Background(), req)
			require.ErrorIs(t, err, subscription.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestService_Create_DepartingTodayIsAllowed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	req := validRequest()
	req.Phone = ""
	req.TripType = domain.TripOneWay
	req.ReturnDate = nil
	req.DepartureDate = domain.DateOf(today)

	f.store.EXPECT().CreateAlert(mock.Anything, mock.Anything).Return(nil).Once()
	f.verifier.EXPECT().
		SendVerificationEmail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestService_VerifyEmail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alert := &domain.Alert{ID: "alert-1", Email: "a@example.com", EmailToken: "tok", IsActive: true}

	f.store.EXPECT().GetAlertByEmailToken(mock.Anything, "tok").Return(alert, nil).Once()
	f.store.EXPECT().SetEmailVerified(mock.Anything, "alert-1").Return(nil).Once()
	f.notifier.EXPECT().
		NotifyActivated(mock.Anything, notify.EmailContact("a@example.com"), mock.Anything).
		Return(true).
		Once()

	got, err := f.svc.VerifyEmail(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, got.EmailVerified)
	assert.True(t, got.Eligible())
}

func TestService_VerifyEmail_UnknownToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetAlertByEmailToken(mock.Anything, "nope").Return(nil, store.ErrNotFound).Once()

	_, err := f.svc.VerifyEmail(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.svc.VerifyEmail(context.Background(), "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestService_VerifyPhone(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	issued := today.Add(-time.Hour)

	tests := []struct {
		name     string
		alert    domain.Alert
		code     string
		attempts int
		wantErr  error
	}{
		{
			name:     "matching code",
			alert:    domain.Alert{ID: "a1", Phone: "+15550100", PhoneCodeHash: string(hash), CreatedAt: issued},
			code:     "123456",
			attempts: 1,
		},
		{
			name:     "wrong code",
			alert:    domain.Alert{ID: "a1", Phone: "+15550100", PhoneCodeHash: string(hash), CreatedAt: issued},
			code:     "654321",
			attempts: 2,
			wantErr:  subscription.ErrInvalidCode,
		},
		{
			name:    "already verified",
			alert:   domain.Alert{ID: "a1", Phone: "+15550100", PhoneVerified: true, CreatedAt: issued},
			code:    "123456",
			wantErr: subscription.ErrInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			alert := tt.alert
			f.store.EXPECT().GetAlert(mock.Anything, "a1").Return(&alert, nil).Once()
			if tt.attempts > 0 {
				f.store.EXPECT().RecordPhoneCodeAttempt(mock.Anything, "a1").Return(tt.attempts, nil).Once()
			}

			if tt.wantErr == nil {
				f.store.EXPECT().SetPhoneVerified(mock.Anything, "a1").Return(nil).Once()
				f.notifier.EXPECT().
					NotifyActivated(mock.Anything, notify.SMSContact("+15550100"), mock.Anything).
					Return(false).
					Once()
			}

			got, err := f.svc.VerifyPhone(context.Background(), "a1", tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.PhoneVerified)
		})
	}
}

// attemptCounter mimics the store's per-alert attempt column: the counter
// only moves while a code is pending, and clearing the code stops it.
type attemptCounter struct {
	mu       sync.Mutex
	attempts int
	cleared  bool
}

func (c *attemptCounter) record(context.Context, string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleared {
		return 0, store.ErrNotFound
	}
	c.attempts++
	return c.attempts, nil
}

func (c *attemptCounter) clear(context.Context, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleared = true
	return nil
}

func TestService_VerifyPhone_AttemptLimit(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	f := newFixture(t)
	counter := &attemptCounter{}
	f.store.EXPECT().GetAlert(mock.Anything, "a1").RunAndReturn(
		func(context.Context, string) (*domain.Alert, error) {
			return &domain.Alert{
				ID: "a1", Phone: "+15550100", PhoneCodeHash: string(hash),
				CreatedAt: today.Add(-time.Minute),
			}, nil
		})
	f.store.EXPECT().RecordPhoneCodeAttempt(mock.Anything, "a1").RunAndReturn(counter.record)
	f.store.EXPECT().ClearPhoneCode(mock.Anything, "a1").RunAndReturn(counter.clear).Once()

	// Walking the code space fails closed once the attempts are spent, even
	// when a later guess is the right one.
	for guess := 100000; guess < 100500; guess++ {
		_, err := f.svc.VerifyPhone(context.Background(), "a1", strconv.Itoa(guess))
		require.ErrorIs(t, err, subscription.ErrInvalidCode)
	}

	_, err = f.svc.VerifyPhone(context.Background(), "a1", "123456")
	require.ErrorIs(t, err, subscription.ErrInvalidCode)

	assert.True(t, counter.cleared)
	assert.Equal(t, 5, counter.attempts)
	f.store.AssertNotCalled(t, "SetPhoneVerified", mock.Anything, mock.Anything)
}

func TestService_VerifyPhone_CustomAttemptLimit(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	st := storemocks.NewMockStore(t)
	svc := subscription.NewService(st, notifymocks.NewMockNotifier(t), notifymocks.NewMockVerifier(t),
		links.NewSigner("secret", 0),
		subscription.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		subscription.WithClock(func() time.Time { return today }),
		subscription.WithPhoneCodeLimits(1, time.Hour),
	)

	alert := &domain.Alert{ID: "a1", Phone: "+15550100", PhoneCodeHash: string(hash), CreatedAt: today}
	st.EXPECT().GetAlert(mock.Anything, "a1").Return(alert, nil).Once()
	st.EXPECT().RecordPhoneCodeAttempt(mock.Anything, "a1").Return(1, nil).Once()
	st.EXPECT().ClearPhoneCode(mock.Anything, "a1").Return(nil).Once()

	_, err = svc.VerifyPhone(context.Background(), "a1", "000000")
	require.ErrorIs(t, err, subscription.ErrInvalidCode)
}

func TestService_VerifyPhone_ExpiredCode(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	f := newFixture(t)
	alert := &domain.Alert{
		ID: "a1", Phone: "+15550100", PhoneCodeHash: string(hash),
		CreatedAt: today.Add(-25 * time.Hour),
	}
	f.store.EXPECT().GetAlert(mock.Anything, "a1").Return(alert, nil).Once()
	f.store.EXPECT().ClearPhoneCode(mock.Anything, "a1").Return(nil).Once()

	_, err = f.svc.VerifyPhone(context.Background(), "a1", "123456")
	require.ErrorIs(t, err, subscription.ErrInvalidCode)
	assert.Contains(t, err.Error(), "expired")
	f.store.AssertNotCalled(t, "RecordPhoneCodeAttempt", mock.Anything, mock.Anything)
}

func TestService_Unsubscribe(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	token, err := f.signer.Sign("alert-1")
	require.NoError(t, err)

	alert := &domain.Alert{
		ID: "alert-1", Origin: "LAX", Destination: "JFK",
		Email: "a@example.com", EmailVerified: true,
		Phone: "+15550100", PhoneVerified: false,
	}
	f.store.EXPECT().GetAlert(mock.Anything, "alert-1").Return(alert, nil).Once()
	f.notifier.EXPECT().
		NotifyDeleted(mock.Anything, notify.EmailContact("a@example.com"), mock.Anything).
		Return(true).
		Once()
	f.store.EXPECT().DeleteAlert(mock.Anything, "alert-1").Return(nil).Once()

	got, err := f.svc.Unsubscribe(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alert-1", got.ID)
}

func TestService_Unsubscribe_BadToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.Unsubscribe(context.Background(), "forged")
	require.ErrorIs(t, err, links.ErrInvalidToken)
}

func TestService_Deactivate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().SetActive(mock.Anything, "a1", false).Return(nil).Once()
	f.store.EXPECT().SetActive(mock.Anything, "missing", false).Return(store.ErrNotFound).Once()

	require.NoError(t, f.svc.Deactivate(context.Background(), "a1"))
	require.ErrorIs(t, f.svc.Deactivate(context.Background(), "missing"), store.ErrNotFound)
}

func TestService_GetAndList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	q := &store.AlertQuery{Limit: 10}
	f.store.EXPECT().GetAlert(mock.Anything, "a1").Return(&domain.Alert{ID: "a1"}, nil).Once()
	f.store.EXPECT().ListAlerts(mock.Anything, q).Return([]domain.Alert{{ID: "a1"}}, 1, nil).Once()

	got, err := f.svc.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	list, total, err := f.svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
}
