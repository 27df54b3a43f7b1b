package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flight-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/flight-price-tracker/internal/links"
	"github.com/donaldgifford/flight-price-tracker/internal/store"
	"github.com/donaldgifford/flight-price-tracker/internal/subscription"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// fakeAlertService implements handlers.AlertService with per-test funcs.
type fakeAlertService struct {
	create      func(*subscription.NewAlert) (*subscription.Created, error)
	get         func(string) (*domain.Alert, error)
	list        func(*store.AlertQuery) ([]domain.Alert, int, error)
	deactivate  func(string) error
	verifyPhone func(id, code string) (*domain.Alert, error)
	verifyEmail func(string) (*domain.Alert, error)
	unsubscribe func(string) (*domain.Alert, error)
}

func (f *fakeAlertService) Create(_ context.Context, in *subscription.NewAlert) (*subscription.Created, error) {
	return f.create(in)
}

func (f *fakeAlertService) Get(_ context.Context, id string) (*domain.Alert, error) {
	return f.get(id)
}

func (f *fakeAlertService) List(_ context.Context, q *store.AlertQuery) ([]domain.Alert, int, error) {
	return f.list(q)
}

func (f *fakeAlertService) Deactivate(_ context.Context, id string) error {
	return f.deactivate(id)
}

func (f *fakeAlertService) VerifyPhone(_ context.Context, id, code string) (*domain.Alert, error) {
	return f.verifyPhone(id, code)
}

func (f *fakeAlertService) VerifyEmail(_ context.Context, token string) (*domain.Alert, error) {
	return f.verifyEmail(token)
}

func (f *fakeAlertService) Unsubscribe(_ context.Context, token string) (*domain.Alert, error) {
	return f.unsubscribe(token)
}

func newAlertsAPI(t *testing.T, svc *fakeAlertService) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	h := handlers.NewAlertsHandler(svc)
	handlers.RegisterAlertRoutes(api, h)
	handlers.RegisterSubscriptionRoutes(api, h)
	return api
}

func sampleAlert() *domain.Alert {
	return &domain.Alert{
		ID:             "a1",
		Origin:         "LAX",
		Destination:    "JFK",
		DepartureDate:  domain.NewDate(2030, 6, 1),
		TripType:       domain.TripOneWay,
		PriceThreshold: decimal.RequireFromString("420"),
		IsActive:       true,
		Email:          "traveler@example.com",
		EmailToken:     "secret-token",
	}
}

func TestAlertsHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		svcErr     error
		wantStatus int
		wantBody   string
		check      func(*testing.T, *subscription.NewAlert)
	}{
		{
			name: "round trip created",
			body: map[string]any{
				"origin":          "lax",
				"destination":     "JFK",
				"departure_date":  "2030-06-01",
				"return_date":     "2030-06-10",
				"trip_type":       "round-trip",
				"price_threshold": "420.50",
				"email":           "traveler@example.com",
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"verification_email_sent":true`,
			check: func(t *testing.T, in *subscription.NewAlert) {
				assert.Equal(t, "lax", in.Origin)
				assert.Equal(t, domain.NewDate(2030, 6, 1), in.DepartureDate)
				require.NotNil(t, in.ReturnDate)
				assert.Equal(t, domain.NewDate(2030, 6, 10), *in.ReturnDate)
				assert.Equal(t, domain.TripRoundTrip, in.TripType)
				assert.Equal(t, "420.5", in.PriceThreshold.String())
			},
		},
		{
			name: "service validation error",
			body: map[string]any{
				"origin":          "LAX",
				"destination":     "LAX",
				"departure_date":  "2030-06-01",
				"trip_type":       "one-way",
				"price_threshold": "100",
				"phone":           "+15551234567",
			},
			svcErr:     fmt.Errorf("%w: origin and destination must differ", subscription.ErrValidation),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "origin and destination must differ",
		},
		{
			name: "store failure",
			body: map[string]any{
				"origin":          "LAX",
				"destination":     "JFK",
				"departure_date":  "2030-06-01",
				"trip_type":       "one-way",
				"price_threshold": "100",
				"email":           "traveler@example.com",
			},
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating alert failed",
		},
		{
			name: "unknown trip type rejected by schema",
			body: map[string]any{
				"origin":          "LAX",
				"destination":     "JFK",
				"departure_date":  "2030-06-01",
				"trip_type":       "multi-city",
				"price_threshold": "100",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "malformed price rejected by schema",
			body: map[string]any{
				"origin":          "LAX",
				"destination":     "JFK",
				"departure_date":  "2030-06-01",
				"trip_type":       "one-way",
				"price_threshold": "cheap",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *subscription.NewAlert
			svc := &fakeAlertService{
				create: func(in *subscription.NewAlert) (*subscription.Created, error) {
					got = in
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &subscription.Created{Alert: sampleAlert(), VerificationEmailSent: true}, nil
				},
			}

			resp := newAlertsAPI(t, svc).Post("/api/v1/alerts", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.NotContains(t, resp.Body.String(), "secret-token")
			if tt.check != nil {
				require.NotNil(t, got)
				tt.check(t, got)
			}
		})
	}
}

func TestAlertsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		check      func(*testing.T, *store.AlertQuery)
		result     []domain.Alert
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:   "no filters",
			path:   "/api/v1/alerts",
			result: []domain.Alert{*sampleAlert()},
			check: func(t *testing.T, q *store.AlertQuery) {
				assert.Nil(t, q.Active)
				assert.Nil(t, q.Origin)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "filters",
			path: "/api/v1/alerts?active=true&verified=false&origin=LAX&limit=5&offset=10&order_by=departure_date",
			check: func(t *testing.T, q *store.AlertQuery) {
				require.NotNil(t, q.Active)
				assert.True(t, *q.Active)
				require.NotNil(t, q.Verified)
				assert.False(t, *q.Verified)
				require.NotNil(t, q.Origin)
				assert.Equal(t, "LAX", *q.Origin)
				assert.Equal(t, 5, q.Limit)
				assert.Equal(t, 10, q.Offset)
				assert.Equal(t, "departure_date", q.OrderBy)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"alerts":[]`,
		},
		{
			name:       "store error",
			path:       "/api/v1/alerts",
			err:        errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing alerts failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAlertService{
				list: func(q *store.AlertQuery) ([]domain.Alert, int, error) {
					if tt.check != nil {
						tt.check(t, q)
					}
					return tt.result, len(tt.result), tt.err
				},
			}

			resp := newAlertsAPI(t, svc).Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "found", id: "a1", wantStatus: http.StatusOK, wantBody: `"departure_date":"2030-06-01"`},
		{name: "not found", id: "nope", err: fmt.Errorf("getting alert: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound, wantBody: "alert not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAlertService{
				get: func(id string) (*domain.Alert, error) {
					assert.Equal(t, tt.id, id)
					if tt.err != nil {
						return nil, tt.err
					}
					return sampleAlert(), nil
				},
			}

			resp := newAlertsAPI(t, svc).Get("/api/v1/alerts/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertsHandler_Deactivate(t *testing.T) {
	t.Parallel()

	var deactivated string
	svc := &fakeAlertService{
		deactivate: func(id string) error {
			deactivated = id
			return nil
		},
	}

	resp := newAlertsAPI(t, svc).Post("/api/v1/alerts/a1/deactivate")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"deactivated"`)
	assert.Equal(t, "a1", deactivated)
}

func TestAlertsHandler_VerifyPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		code       string
		err        error
		wantStatus int
	}{
		{name: "verified", code: "123456", wantStatus: http.StatusOK},
		{name: "wrong code", code: "654321", err: subscription.ErrInvalidCode, wantStatus: http.StatusBadRequest},
		{name: "malformed code", code: "12ab", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAlertService{
				verifyPhone: func(id, code string) (*domain.Alert, error) {
					assert.Equal(t, "a1", id)
					assert.Equal(t, tt.code, code)
					if tt.err != nil {
						return nil, tt.err
					}
					a := sampleAlert()
					a.PhoneVerified = true
					return a, nil
				},
			}

			resp := newAlertsAPI(t, svc).Post("/api/v1/alerts/a1/verify-phone", map[string]any{"code": tt.code})
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestSubscriptionRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "verify email", path: "/verify-email?token=tok", wantStatus: http.StatusOK, wantBody: `"status":"verified"`},
		{name: "verify email unknown token", path: "/verify-email?token=tok", err: store.ErrNotFound,
			wantStatus: http.StatusNotFound},
		{name: "verify email missing token", path: "/verify-email", wantStatus: http.StatusUnprocessableEntity},
		{name: "unsubscribe", path: "/unsubscribe?token=tok", wantStatus: http.StatusOK, wantBody: `"status":"unsubscribed"`},
		{name: "unsubscribe bad token", path: "/unsubscribe?token=tok",
			err: fmt.Errorf("unsubscribing: %w", links.ErrInvalidToken), wantStatus: http.StatusBadRequest,
			wantBody: "invalid or expired link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolve := func(token string) (*domain.Alert, error) {
				assert.Equal(t, "tok", token)
				if tt.err != nil {
					return nil, tt.err
				}
				return sampleAlert(), nil
			}
			svc := &fakeAlertService{verifyEmail: resolve, unsubscribe: resolve}

			resp := newAlertsAPI(t, svc).Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, resp.Body.String(), `"route":"LAX → JFK"`)
			}
		})
	}
}
