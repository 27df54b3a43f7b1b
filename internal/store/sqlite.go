package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// sqliteTimeLayout is fixed-width so TEXT ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02 15:04:05.000000000"

// SQLite queries. Dates are YYYY-MM-DD TEXT, prices are decimal TEXT, and
// timestamps use sqliteTimeLayout in UTC.
const (
	sqliteInsertAlert = `
		INSERT INTO alerts (
			id, origin, destination, departure_date, return_date, trip_type,
			price_threshold, is_active, email, phone,
			email_verified, phone_verified, email_token, phone_code_hash, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?)`

	sqliteGetAlert             = baseAlertsSelect + ` WHERE id = ?`
	sqliteGetAlertByEmailToken = baseAlertsSelect + ` WHERE email_token = ?`

	sqliteListEligibleAlerts = baseAlertsSelect + `
		WHERE is_active = 1 AND (email_verified = 1 OR phone_verified = 1)
		ORDER BY created_at ASC, id ASC`

	sqliteUpdateLastChecked    = `UPDATE alerts SET last_checked = ? WHERE id = ?`
	sqliteUpdatePriceThreshold = `UPDATE alerts SET price_threshold = ? WHERE id = ?`
	sqliteDeleteAlert          = `DELETE FROM alerts WHERE id = ?`
	sqliteSetEmailVerified     = `UPDATE alerts SET email_verified = 1, email_token = NULL WHERE id = ?`
	sqliteSetPhoneVerified     = `UPDATE alerts SET phone_verified = 1, phone_code_hash = NULL WHERE id = ?`
	sqliteSetActive            = `UPDATE alerts SET is_active = ? WHERE id = ?`
	sqliteClearPhoneCode       = `UPDATE alerts SET phone_code_hash = NULL WHERE id = ?`

	sqliteRecordPhoneCodeAttempt = `
		UPDATE alerts SET phone_code_attempts = phone_code_attempts + 1
		WHERE id = ? AND phone_code_hash IS NOT NULL
		RETURNING phone_code_attempts`

	sqliteCountAlerts = `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN is_active = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_active = 1 AND (email_verified = 1 OR phone_verified = 1) THEN 1 ELSE 0 END), 0)
		FROM alerts`

	sqliteInsertPassRun   = `INSERT INTO pass_runs (id, started_at) VALUES (?, ?)`
	sqliteCompletePassRun = `
		UPDATE pass_runs SET
			completed_at = ?, status = ?, error_text = NULLIF(?, ''),
			eligible = ?, expired = ?, notified = ?, no_change = ?, skipped = ?
		WHERE id = ?`
	sqliteListPassRuns = `
		SELECT id, started_at, completed_at, status, COALESCE(error_text, ''),
			eligible, expired, notified, no_change, skipped
		FROM pass_runs
		ORDER BY started_at DESC
		LIMIT ?`
	sqliteMarkStalePassRunsInterrupted = `
		UPDATE pass_runs SET status = 'interrupted', completed_at = ?
		WHERE status = 'running' AND started_at < ?`
	sqliteDeleteOldPassRuns = `DELETE FROM pass_runs WHERE started_at < ?`
)

// SQLiteStore implements Store on an embedded SQLite database for
// single-node deployments and local development.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the SQLite database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return runSQLiteMigrations(ctx, s.db)
}

// CreateAlert inserts a new alert, populating ID and CreatedAt.
func (s *SQLiteStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	id := uuid.NewString()
	created := s.now().UTC()

	var ret any
	if a.ReturnDate != nil && !a.ReturnDate.IsZero() {
		ret = a.ReturnDate.String()
	}

	if _, err := s.db.ExecContext(ctx, sqliteInsertAlert,
		id, a.Origin, a.Destination, a.DepartureDate.String(), ret, string(a.TripType),
		a.PriceThreshold.String(), a.IsActive, a.Email, a.Phone,
		a.EmailVerified, a.PhoneVerified, a.EmailToken, a.PhoneCodeHash,
		created.Format(sqliteTimeLayout),
	); err != nil {
		return fmt.Errorf("inserting alert: %w", err)
	}

	a.ID = id
	a.CreatedAt = created
	return nil
}

// GetAlert retrieves an alert by ID.
func (s *SQLiteStore) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	return s.getAlert(ctx, sqliteGetAlert, id)
}

// GetAlertByEmailToken retrieves the alert awaiting the given email
// verification token.
func (s *SQLiteStore) GetAlertByEmailToken(ctx context.Context, token string) (*domain.Alert, error) {
	return s.getAlert(ctx, sqliteGetAlertByEmailToken, token)
}

func (s *SQLiteStore) getAlert(ctx context.Context, query, arg string) (*domain.Alert, error) {
	a := &domain.Alert{}
	err := scanSQLiteAlert(s.db.QueryRowContext(ctx, query, arg), a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting alert: %w", err)
	}
	return a, nil
}

// ListAlerts queries alerts with optional filters, returning results and
// total count.
func (s *SQLiteStore) ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.Alert, int, error) {
	if q == nil {
		q = &AlertQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL(questionPlaceholder)

	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
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
func (s *SQLiteStore) ListEligibleAlerts(ctx context.Context) ([]domain.Alert, error) {
	return s.queryAlerts(ctx, sqliteListEligibleAlerts)
}

// UpdateLastChecked records when the alert was last evaluated.
func (s *SQLiteStore) UpdateLastChecked(ctx context.Context, id string, t time.Time) error {
	return s.execAlert(ctx, "updating last checked", sqliteUpdateLastChecked,
		t.UTC().Format(sqliteTimeLayout), id)
}

// UpdatePriceThreshold sets the alert's threshold.
func (s *SQLiteStore) UpdatePriceThreshold(ctx context.Context, id string, price decimal.Decimal) error {
	return s.execAlert(ctx, "updating price threshold", sqliteUpdatePriceThreshold, price.String(), id)
}

// DeleteAlert removes an alert.
func (s *SQLiteStore) DeleteAlert(ctx context.Context, id string) error {
	return s.execAlert(ctx, "deleting alert", sqliteDeleteAlert, id)
}

// SetEmailVerified marks the email contact verified and clears its token.
func (s *SQLiteStore) SetEmailVerified(ctx context.Context, id string) error {
	return s.execAlert(ctx, "setting email verified", sqliteSetEmailVerified, id)
}

// SetPhoneVerified marks the phone contact verified and clears its code hash.
func (s *SQLiteStore) SetPhoneVerified(ctx context.Context, id string) error {
	return s.execAlert(ctx, "setting phone verified", sqliteSetPhoneVerified, id)
}

// RecordPhoneCodeAttempt counts one verification attempt against the
// pending phone code and returns the new total. It returns ErrNotFound when
// no code is pending.
func (s *SQLiteStore) RecordPhoneCodeAttempt(ctx context.Context, id string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, sqliteRecordPhoneCodeAttempt, id).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("recording phone code attempt: %w", ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("recording phone code attempt: %w", err)
	}
	return n, nil
}

// ClearPhoneCode discards the pending phone code.
func (s *SQLiteStore) ClearPhoneCode(ctx context.Context, id string) error {
	return s.execAlert(ctx, "clearing phone code", sqliteClearPhoneCode, id)
}

// SetActive enables or disables an alert.
func (s *SQLiteStore) SetActive(ctx context.Context, id string, active bool) error {
	return s.execAlert(ctx, "setting alert active", sqliteSetActive, active, id)
}

func (s *SQLiteStore) execAlert(ctx context.Context, op, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// GetSystemState returns alert counts and the most recent pass run.
func (s *SQLiteStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	if err := s.db.QueryRowContext(ctx, sqliteCountAlerts).Scan(
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
func (s *SQLiteStore) InsertPassRun(ctx context.Context, startedAt time.Time) (string, error) {
	id := uuid.NewString()
	if _, err := s.db.ExecContext(ctx, sqliteInsertPassRun,
		id, startedAt.UTC().Format(sqliteTimeLayout),
	); err != nil {
		return "", fmt.Errorf("inserting pass run: %w", err)
	}
	return id, nil
}

// CompletePassRun records the final status and counters of a pass.
func (s *SQLiteStore) CompletePassRun(
	ctx context.Context,
	id, status, errText string,
	sum *domain.PassSummary,
) error {
	if sum == nil {
		sum = &domain.PassSummary{}
	}
	if _, err := s.db.ExecContext(ctx, sqliteCompletePassRun,
		s.now().UTC().Format(sqliteTimeLayout), status, errText,
		sum.Eligible, sum.Expired, sum.Notified, sum.NoChange, sum.Skipped,
		id,
	); err != nil {
		return fmt.Errorf("completing pass run: %w", err)
	}
	return nil
}

// ListPassRuns returns the most recent pass runs, newest first.
func (s *SQLiteStore) ListPassRuns(ctx context.Context, limit int) ([]domain.PassRun, error) {
	rows, err := s.db.QueryContext(ctx, sqliteListPassRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("querying pass runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []domain.PassRun
	for rows.Next() {
		var (
			r         domain.PassRun
			started   string
			completed sql.NullString
		)
		if err := rows.Scan(
			&r.ID, &started, &completed, &r.Status, &r.ErrorText,
			&r.Eligible, &r.Expired, &r.Notified, &r.NoChange, &r.Skipped,
		); err != nil {
			return nil, fmt.Errorf("scanning pass run: %w", err)
		}
		if r.StartedAt, err = parseSQLiteTime(started); err != nil {
			return nil, fmt.Errorf("scanning pass run: %w", err)
		}
		if completed.Valid {
			t, err := parseSQLiteTime(completed.String)
			if err != nil {
				return nil, fmt.Errorf("scanning pass run: %w", err)
			}
			r.CompletedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RecoverStalePassRuns marks passes left running by a crashed process as
// interrupted and prunes runs older than 30 days.
func (s *SQLiteStore) RecoverStalePassRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	now := s.now().UTC()

	res, err := s.db.ExecContext(ctx, sqliteMarkStalePassRunsInterrupted,
		now.Format(sqliteTimeLayout), now.Add(-olderThan).Format(sqliteTimeLayout))
	if err != nil {
		return 0, fmt.Errorf("marking stale pass runs interrupted: %w", err)
	}
	n, _ := res.RowsAffected()

	if _, err := s.db.ExecContext(ctx, sqliteDeleteOldPassRuns,
		now.AddDate(0, 0, -30).Format(sqliteTimeLayout),
	); err != nil {
		return int(n), fmt.Errorf("deleting old pass runs: %w", err)
	}
	return int(n), nil
}

func (s *SQLiteStore) queryAlerts(ctx context.Context, query string, args ...any) ([]domain.Alert, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanSQLiteAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alerts: %w", err)
	}
	return alerts, nil
}

// scanSQLiteAlert scans a baseAlertsSelect row. Malformed TEXT dates or
// prices do not fail the scan; they are recorded on Alert.DecodeErr so the
// caller can skip that one alert.
func scanSQLiteAlert(row scannable, a *domain.Alert) error {
	var (
		departure   string
		ret         sql.NullString
		tripType    string
		threshold   string
		lastChecked sql.NullString
		created     string
	)
	if err := row.Scan(
		&a.ID, &a.Origin, &a.Destination, &departure, &ret,
		&tripType, &threshold, &a.IsActive,
		&a.Email, &a.Phone, &a.EmailVerified, &a.PhoneVerified,
		&a.EmailToken, &a.PhoneCodeHash,
		&lastChecked, &created,
	); err != nil {
		return err
	}

	a.TripType = domain.TripType(tripType)

	var decodeErrs []error
	if d, err := domain.ParseDate(departure); err != nil {
		decodeErrs = append(decodeErrs, fmt.Errorf("departure_date: %w", err))
	} else {
		a.DepartureDate = d
	}
	if ret.Valid && ret.String != "" {
		if d, err := domain.ParseDate(ret.String); err != nil {
			decodeErrs = append(decodeErrs, fmt.Errorf("return_date: %w", err))
		} else {
			a.ReturnDate = &d
		}
	}
	if p, err := decimal.NewFromString(threshold); err != nil {
		decodeErrs = append(decodeErrs, fmt.Errorf("price_threshold: %w", err))
	} else {
		a.PriceThreshold = p
	}
	if lastChecked.Valid {
		if t, err := parseSQLiteTime(lastChecked.String); err != nil {
			decodeErrs = append(decodeErrs, fmt.Errorf("last_checked: %w", err))
		} else {
			a.LastChecked = &t
		}
	}
	if t, err := parseSQLiteTime(created); err != nil {
		decodeErrs = append(decodeErrs, fmt.Errorf("created_at: %w", err))
	} else {
		a.CreatedAt = t
	}

	a.DecodeErr = errors.Join(decodeErrs...)
	return nil
}

func parseSQLiteTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(sqliteTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
