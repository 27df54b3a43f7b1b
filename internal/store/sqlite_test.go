package store

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	ctx := context.Background()
	s, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "fpt.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))
	return s
}

func newTestAlert(origin string) *domain.Alert {
	return &domain.Alert{
		Origin:         origin,
		Destination:    "JFK",
		DepartureDate:  domain.NewDate(2030, 6, 1),
		TripType:       domain.TripOneWay,
		PriceThreshold: decimal.RequireFromString("420.00"),
		IsActive:       true,
		Email:          "a@example.com",
	}
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestSQLiteStore_CreateAndGetAlert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	ret := domain.NewDate(2030, 6, 10)
	a := newTestAlert("LAX")
	a.TripType = domain.TripRoundTrip
	a.ReturnDate = &ret
	a.Phone = "+15550001111"
	a.EmailToken = "tok-123"
	a.PhoneCodeHash = "hash"

	require.NoError(t, s.CreateAlert(ctx, a))
	require.NotEmpty(t, a.ID)
	require.False(t, a.CreatedAt.IsZero())

	got, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	require.NoError(t, got.DecodeErr)
	assert.Equal(t, "LAX", got.Origin)
	assert.Equal(t, domain.NewDate(2030, 6, 1), got.DepartureDate)
	require.NotNil(t, got.ReturnDate)
	assert.Equal(t, ret, *got.ReturnDate)
	assert.Equal(t, domain.TripRoundTrip, got.TripType)
	assert.True(t, decimal.RequireFromString("420").Equal(got.PriceThreshold))
	assert.True(t, got.IsActive)
	assert.False(t, got.EmailVerified)
	assert.Equal(t, "+15550001111", got.Phone)
	assert.Equal(t, "tok-123", got.EmailToken)
	assert.Equal(t, "hash", got.PhoneCodeHash)
	assert.Nil(t, got.LastChecked)

	byToken, err := s.GetAlertByEmailToken(ctx, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byToken.ID)
}

func TestSQLiteStore_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	_, err := s.GetAlert(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetAlertByEmailToken(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.DeleteAlert(ctx, "missing"), ErrNotFound)
	require.ErrorIs(t, s.UpdateLastChecked(ctx, "missing", time.Now()), ErrNotFound)
	require.ErrorIs(t, s.UpdatePriceThreshold(ctx, "missing", decimal.NewFromInt(1)), ErrNotFound)
	require.ErrorIs(t, s.SetEmailVerified(ctx, "missing"), ErrNotFound)
}

func TestSQLiteStore_ListEligibleAlerts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	emailOnly := newTestAlert("AAA")
	emailOnly.EmailVerified = true
	phoneOnly := newTestAlert("BBB")
	phoneOnly.Phone = "+15550001111"
	phoneOnly.PhoneVerified = true
	unverified := newTestAlert("CCC")
	inactive := newTestAlert("DDD")
	inactive.EmailVerified = true
	inactive.IsActive = false

	for _, a := range []*domain.Alert{emailOnly, phoneOnly, unverified, inactive} {
		require.NoError(t, s.CreateAlert(ctx, a))
	}

	got, err := s.ListEligibleAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, emailOnly.ID, got[0].ID, "oldest first")
	assert.Equal(t, phoneOnly.ID, got[1].ID)

	for _, a := range got {
		assert.True(t, a.Eligible())
	}
}

func TestSQLiteStore_ListEligibleAlerts_SameCreatedAtOrderedByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }

	var ids []string
	for _, origin := range []string{"AAA", "BBB", "CCC", "DDD"} {
		a := newTestAlert(origin)
		a.EmailVerified = true
		require.NoError(t, s.CreateAlert(ctx, a))
		ids = append(ids, a.ID)
	}
	slices.Sort(ids)

	for range 3 {
		got, err := s.ListEligibleAlerts(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(ids))
		for i, a := range got {
			assert.Equal(t, ids[i], a.ID)
		}
	}
}

func TestSQLiteStore_PhoneCodeAttempts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	a := newTestAlert("LAX")
	a.Phone = "+15550001111"
	a.PhoneCodeHash = "hash"
	require.NoError(t, s.CreateAlert(ctx, a))

	for want := 1; want <= 3; want++ {
		n, err := s.RecordPhoneCodeAttempt(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	require.NoError(t, s.ClearPhoneCode(ctx, a.ID))
	got, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PhoneCodeHash)

	_, err = s.RecordPhoneCodeAttempt(ctx, a.ID)
	require.ErrorIs(t, err, ErrNotFound, "no code pending")

	_, err = s.RecordPhoneCodeAttempt(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.ClearPhoneCode(ctx, "missing"), ErrNotFound)
}

func TestSQLiteStore_Mutations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	a := newTestAlert("LAX")
	a.Phone = "+15550001111"
	a.EmailToken = "tok"
	a.PhoneCodeHash = "hash"
	require.NoError(t, s.CreateAlert(ctx, a))

	checked := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, s.UpdateLastChecked(ctx, a.ID, checked))
	require.NoError(t, s.UpdatePriceThreshold(ctx, a.ID, decimal.RequireFromString("399.99")))
	require.NoError(t, s.SetEmailVerified(ctx, a.ID))
	require.NoError(t, s.SetPhoneVerified(ctx, a.ID))
	require.NoError(t, s.SetActive(ctx, a.ID, false))

	got, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastChecked)
	assert.True(t, checked.Equal(*got.LastChecked))
	assert.Equal(t, "399.99", got.PriceThreshold.StringFixed(2))
	assert.True(t, got.EmailVerified)
	assert.True(t, got.PhoneVerified)
	assert.Empty(t, got.EmailToken, "token cleared on verification")
	assert.Empty(t, got.PhoneCodeHash, "code hash cleared on verification")
	assert.False(t, got.IsActive)

	require.NoError(t, s.DeleteAlert(ctx, a.ID))
	_, err = s.GetAlert(ctx, a.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_ListAlerts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	for _, origin := range []string{"LAX", "LAX", "SFO"} {
		require.NoError(t, s.CreateAlert(ctx, newTestAlert(origin)))
	}

	all, total, err := s.ListAlerts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	lax, total, err := s.ListAlerts(ctx, &AlertQuery{Origin: ptr("lax"), Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, lax, 1)

	verified, total, err := s.ListAlerts(ctx, &AlertQuery{Verified: ptr(true)})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, verified)
}

func TestSQLiteStore_MalformedRowSetsDecodeErr(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	good := newTestAlert("LAX")
	good.EmailVerified = true
	require.NoError(t, s.CreateAlert(ctx, good))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alerts (id, origin, destination, departure_date, trip_type,
			price_threshold, is_active, email, email_verified, created_at)
		VALUES ('bad', 'SFO', 'JFK', 'not-a-date', 'one-way', '100', 1, 'b@example.com', 1, ?)`,
		time.Now().UTC().Format(sqliteTimeLayout),
	)
	require.NoError(t, err)

	alerts, err := s.ListEligibleAlerts(ctx)
	require.NoError(t, err, "one bad row must not fail the whole fetch")
	require.Len(t, alerts, 2)

	var bad *domain.Alert
	for i := range alerts {
		if alerts[i].ID == "bad" {
			bad = &alerts[i]
		}
	}
	require.NotNil(t, bad)
	require.Error(t, bad.DecodeErr)
	assert.Contains(t, bad.DecodeErr.Error(), "departure_date")
	require.ErrorIs(t, bad.Validate(), domain.ErrInvalidAlert)
}

func TestSQLiteStore_PassRuns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	start := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	id, err := s.InsertPassRun(ctx, start)
	require.NoError(t, err)

	sum := &domain.PassSummary{Eligible: 4, Expired: 1, Notified: 1, NoChange: 1, Skipped: 1}
	require.NoError(t, s.CompletePassRun(ctx, id, domain.PassSucceeded, "", sum))

	runs, err := s.ListPassRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.True(t, start.Equal(runs[0].StartedAt))
	require.NotNil(t, runs[0].CompletedAt)
	assert.Equal(t, domain.PassSucceeded, runs[0].Status)
	assert.Equal(t, 4, runs[0].Eligible)
	assert.Equal(t, 1, runs[0].Skipped)

	state, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.LastPass)
	assert.Equal(t, id, state.LastPass.ID)
}

func TestSQLiteStore_RecoverStalePassRuns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	now := time.Now().UTC()
	_, err := s.InsertPassRun(ctx, now.Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = s.InsertPassRun(ctx, now)
	require.NoError(t, err)

	n, err := s.RecoverStalePassRuns(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	runs, err := s.ListPassRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, domain.PassRunning, runs[0].Status)
	assert.Equal(t, domain.PassInterrupted, runs[1].Status)
}

func TestSQLiteStore_SystemStateCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := setupSQLite(t)

	eligible := newTestAlert("AAA")
	eligible.EmailVerified = true
	pending := newTestAlert("BBB")
	disabled := newTestAlert("CCC")
	disabled.IsActive = false
	for _, a := range []*domain.Alert{eligible, pending, disabled} {
		require.NoError(t, s.CreateAlert(ctx, a))
	}

	state, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.AlertsTotal)
	assert.Equal(t, 2, state.AlertsActive)
	assert.Equal(t, 1, state.AlertsEligible)
	assert.Nil(t, state.LastPass)
}
