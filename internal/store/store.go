// Package store defines the alert datastore abstraction for
// flight-price-tracker. All business logic depends on the Store interface,
// never on concrete implementations. This enables mock-based testing without
// a running database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store defines all data access operations for flight-price-tracker.
type Store interface {
	// Alerts
	CreateAlert(ctx context.Context, a *domain.Alert) error
	GetAlert(ctx context.Context, id string) (*domain.Alert, error)
	GetAlertByEmailToken(ctx context.Context, token string) (*domain.Alert, error)
	ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.Alert, int, error)
	// ListEligibleAlerts returns active alerts with at least one verified
	// contact, oldest first with ID breaking ties.
	ListEligibleAlerts(ctx context.Context) ([]domain.Alert, error)
	UpdateLastChecked(ctx context.Context, id string, t time.Time) error
	UpdatePriceThreshold(ctx context.Context, id string, price decimal.Decimal) error
	DeleteAlert(ctx context.Context, id string) error
	SetEmailVerified(ctx context.Context, id string) error
	SetPhoneVerified(ctx context.Context, id string) error
	RecordPhoneCodeAttempt(ctx context.Context, id string) (int, error)
	ClearPhoneCode(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Pass runs
	InsertPassRun(ctx context.Context, startedAt time.Time) (id string, err error)
	CompletePassRun(ctx context.Context, id, status, errText string, s *domain.PassSummary) error
	ListPassRuns(ctx context.Context, limit int) ([]domain.PassRun, error)
	RecoverStalePassRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close()
}
