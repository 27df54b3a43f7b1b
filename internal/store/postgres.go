package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n) //nolint:gosec // pool size comes from config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateAlert inserts a new alert, populating ID and CreatedAt.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	args := pgx.NamedArgs{
		"origin":          a.Origin,
		"destination":     a.Destination,
		"departure_date":  a.DepartureDate.Time(),
		"return_date":     dateArg(a.ReturnDate),
		"trip_type":       string(a.TripType),
		"price_threshold": a.PriceThreshold,
		"is_active":       a.IsActive,
		"email":           a.Email,
		"phone":           a.Phone,
		"email_verified":  a.EmailVerified,
		"phone_verified":  a.PhoneVerified,
		"email_token":     a.EmailToken,
		"phone_code_hash": a.PhoneCodeHash,
	}

	if err := s.pool.QueryRow(ctx, queryInsertAlert, args).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("inserting alert: %w", err)
	}
	return nil
}

// GetAlert retrieves an alert by ID.
func (s *PostgresStore) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	return s.getAlert(ctx, queryGetAlert, id)
}

// GetAlertByEmailToken retrieves the alert awaiting the given email
// verification token.
func (s *PostgresStore) GetAlertByEmailToken(
	ctx context.Context,
	token string,
) (*domain.Alert, error) {
	return s.getAlert(ctx, queryGetAlertByEmailToken, token)
}

func (s *PostgresStore) getAlert(ctx context.Context, query, arg string) (*domain.Alert, error) {
	a := &domain.Alert{}
	err := scanPostgresAlert(s.pool.QueryRow(ctx, query, arg), a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting alert: %w", err)
	}
	return a, nil
}

// ListAlerts queries alerts with optional filters, returning results and
// total count.
func (s *PostgresStore) ListAlerts(
	ctx context.Context,
	q *AlertQuery,
) ([]domain.Alert, int, error) {
	if q == nil {
		q = &AlertQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL(dollarPlaceholder)

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting alerts: %w", err)
	}

	alerts, err := s.queryAlerts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// ListEligibleAlerts returns active alerts with a verified contact, ordered
// by creation time ascending with ID breaking ties.
func (s *PostgresStore) ListEligibleAlerts(ctx context.Context) ([]domain.Alert, error) {
	return s.queryAlerts(ctx, queryListEligibleAlerts)
}

// UpdateLastChecked records when the alert was last evaluated.
func (s *PostgresStore) UpdateLastChecked(ctx context.Context, id string, t time.Time) error {
	return s.execAlert(ctx, "updating last checked", queryUpdateLastChecked, id, t)
}

// UpdatePriceThreshold sets the alert's threshold.
func (s *PostgresStore) UpdatePriceThreshold(
	ctx context.Context,
	id string,
	price decimal.Decimal,
) error {
	return s.execAlert(ctx, "updating price threshold", queryUpdatePriceThreshold, id, price)
}

// DeleteAlert removes an alert.
func (s *PostgresStore) DeleteAlert(ctx context.Context, id string) error {
	return s.execAlert(ctx, "deleting alert", queryDeleteAlert, id)
}

// SetEmailVerified marks the email contact verified and clears its token.
func (s *PostgresStore) SetEmailVerified(ctx context.Context, id string) error {
	return s.execAlert(ctx, "setting email verified", querySetEmailVerified, id)
}

// SetPhoneVerified marks the phone contact verified and clears its code hash.
func (s *PostgresStore) SetPhoneVerified(ctx context.Context, id string) error {
	return s.execAlert(ctx, "setting phone verified", querySetPhoneVerified, id)
}

// RecordPhoneCodeAttempt counts one verification attempt against the
// pending phone code and returns the new total. It returns ErrNotFound when
// no code is pending.
func (s *PostgresStore) RecordPhoneCodeAttempt(ctx context.Context, id string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, queryRecordPhoneCodeAttempt, id).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("recording phone code attempt: %w", ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("recording phone code attempt: %w", err)
	}
	return n, nil
}

// ClearPhoneCode discards the pending phone code.
func (s *PostgresStore) ClearPhoneCode(ctx context.Context, id string) error {
	return s.execAlert(ctx, "clearing phone code", queryClearPhoneCode, id)
}

// SetActive enables or disables an alert.
func (s *PostgresStore) SetActive(ctx context.Context, id string, active bool) error {
	return s.execAlert(ctx, "setting alert active", querySetActive, id, active)
}

// execAlert runs a single-row alert mutation and maps zero affected rows to
// ErrNotFound.
func (s *PostgresStore) execAlert(ctx context.Context, op, query string, args ...any) error {
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// GetSystemState returns alert counts and the most recent pass run.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	if err := s.pool.QueryRow(ctx, queryCountAlerts).Scan(
		&st.AlertsTotal, &st.AlertsActive, &st.AlertsEligible,
	); err != nil {
		return nil, fmt.Errorf("counting alerts: %w", err)
	}

	runs, err := s.ListPassRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) > 0 {
		st.LastPass = &runs[0]
	}

	return st, nil
}

// InsertPassRun records the start of a pass and returns its ID.
func (s *PostgresStore) InsertPassRun(ctx context.Context, startedAt time.Time) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertPassRun, startedAt).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting pass run: %w", err)
	}
	return id, nil
}

// CompletePassRun records the final status and counters of a pass.
func (s *PostgresStore) CompletePassRun(
	ctx context.Context,
	id, status, errText string,
	sum *domain.PassSummary,
) error {
	if sum == nil {
		sum = &domain.PassSummary{}
	}
	args := pgx.NamedArgs{
		"id":         id,
		"status":     status,
		"error_text": errText,
		"eligible":   sum.Eligible,
		"expired":    sum.Expired,
		"notified":   sum.Notified,
		"no_change":  sum.NoChange,
		"skipped":    sum.Skipped,
	}
	if _, err := s.pool.Exec(ctx, queryCompletePassRun, args); err != nil {
		return fmt.Errorf("completing pass run: %w", err)
	}
	return nil
}

// ListPassRuns returns the most recent pass runs, newest first.
func (s *PostgresStore) ListPassRuns(ctx context.Context, limit int) ([]domain.PassRun, error) {
	rows, err := s.pool.Query(ctx, queryListPassRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("querying pass runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.PassRun
	for rows.Next() {
		var r domain.PassRun
		if err := rows.Scan(
			&r.ID, &r.StartedAt, &r.CompletedAt, &r.Status, &r.ErrorText,
			&r.Eligible, &r.Expired, &r.Notified, &r.NoChange, &r.Skipped,
		); err != nil {
			return nil, fmt.Errorf("scanning pass run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RecoverStalePassRuns marks passes left running by a crashed process as
// interrupted and prunes runs older than 30 days.
func (s *PostgresStore) RecoverStalePassRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStalePassRunsInterrupted, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale pass runs interrupted: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldPassRuns); err != nil {
		return affected, fmt.Errorf("deleting old pass runs: %w", err)
	}

	return affected, nil
}

func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Alert, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanPostgresAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alerts: %w", err)
	}
	return alerts, nil
}

// scannable abstracts pgx.Row, pgx.Rows, and *sql.Row(s) for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanPostgresAlert scans a baseAlertsSelect row. DATE columns arrive as
// time.Time and are normalized to calendar dates.
func scanPostgresAlert(row scannable, a *domain.Alert) error {
	var (
		departure time.Time
		ret       *time.Time
		tripType  string
	)
	if err := row.Scan(
		&a.ID, &a.Origin, &a.Destination, &departure, &ret,
		&tripType, &a.PriceThreshold, &a.IsActive,
		&a.Email, &a.Phone, &a.EmailVerified, &a.PhoneVerified,
		&a.EmailToken, &a.PhoneCodeHash,
		&a.LastChecked, &a.CreatedAt,
	); err != nil {
		return err
	}

	a.TripType = domain.TripType(tripType)
	a.DepartureDate = domain.DateOf(departure)
	if ret != nil {
		rd := domain.DateOf(*ret)
		a.ReturnDate = &rd
	}
	return nil
}

func dateArg(d *domain.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}
