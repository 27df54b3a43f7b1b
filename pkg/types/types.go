// Package domain defines the core business types for the flight price tracker.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TripType distinguishes one-way from round-trip alerts.
type TripType string

// Trip type constants.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// Valid reports whether t is a known trip type.
func (t TripType) Valid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// ErrInvalidAlert is wrapped by every Alert.Validate failure.
var ErrInvalidAlert = errors.New("invalid alert")

// Alert is a stored request to be notified when a route and date pair
// drops below a price threshold.
type Alert struct {
	ID             string          `json:"id"                     db:"id"`
	Origin         string          `json:"origin"                 db:"origin"`
	Destination    string          `json:"destination"            db:"destination"`
	DepartureDate  Date            `json:"departure_date"         db:"departure_date"`
	ReturnDate     *Date           `json:"return_date,omitempty"  db:"return_date"`
	TripType       TripType        `json:"trip_type"              db:"trip_type"`
	PriceThreshold decimal.Decimal `json:"price_threshold"        db:"price_threshold"`
	IsActive       bool            `json:"is_active"              db:"is_active"`
	Email          string          `json:"email,omitempty"        db:"email"`
	Phone          string          `json:"phone,omitempty"        db:"phone"`
	EmailVerified  bool            `json:"email_verified"         db:"email_verified"`
	PhoneVerified  bool            `json:"phone_verified"         db:"phone_verified"`
	LastChecked    *time.Time      `json:"last_checked,omitempty" db:"last_checked"`
	CreatedAt      time.Time       `json:"created_at"             db:"created_at"`

	// Verification secrets never leave the service.
	EmailToken    string `json:"-" db:"email_token"`
	PhoneCodeHash string `json:"-" db:"phone_code_hash"`

	// DecodeErr is set by a store when a row could not be decoded cleanly
	// (for example a malformed stored date). The alert is still returned so
	// callers can report and skip it.
	DecodeErr error `json:"-" db:"-"`
}

// Eligible reports whether the alert should be price checked: active with
// at least one verified contact channel.
func (a *Alert) Eligible() bool {
	return a.IsActive && (a.EmailVerified || a.PhoneVerified)
}

// Validate checks the stored fields the price check depends on.
func (a *Alert) Validate() error {
	if a.DecodeErr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlert, a.DecodeErr)
	}
	if a.DepartureDate.IsZero() {
		return fmt.Errorf("%w: missing departure date", ErrInvalidAlert)
	}

	switch a.TripType {
	case TripOneWay:
		if a.ReturnDate != nil {
			return fmt.Errorf("%w: one-way trip has a return date", ErrInvalidAlert)
		}
	case TripRoundTrip:
		if a.ReturnDate == nil || a.ReturnDate.IsZero() {
			return fmt.Errorf("%w: round-trip is missing a return date", ErrInvalidAlert)
		}
		if a.ReturnDate.Before(a.DepartureDate) {
			return fmt.Errorf("%w: return date %s before departure %s",
				ErrInvalidAlert, a.ReturnDate, a.DepartureDate)
		}
	default:
		return fmt.Errorf("%w: unknown trip type %q", ErrInvalidAlert, a.TripType)
	}

	return nil
}

// Details returns the immutable notification payload for the alert.
func (a *Alert) Details() AlertDetails {
	d := AlertDetails{
		AlertID:        a.ID,
		Origin:         a.Origin,
		Destination:    a.Destination,
		DepartureDate:  a.DepartureDate,
		TripType:       a.TripType,
		PriceThreshold: a.PriceThreshold,
	}
	if a.ReturnDate != nil {
		rd := *a.ReturnDate
		d.ReturnDate = &rd
	}
	return d
}

// SearchRequest builds the provider query for this alert. The return date is
// only sent for round trips.
func (a *Alert) SearchRequest(limit int) SearchRequest {
	req := SearchRequest{
		Origin:        a.Origin,
		Destination:   a.Destination,
		DepartureDate: a.DepartureDate,
		TripType:      a.TripType,
		Limit:         limit,
	}
	if a.TripType == TripRoundTrip && a.ReturnDate != nil {
		rd := *a.ReturnDate
		req.ReturnDate = &rd
	}
	return req
}

// AlertDetails is the subset of an alert rendered into notifications.
type AlertDetails struct {
	AlertID        string
	Origin         string
	Destination    string
	DepartureDate  Date
	ReturnDate     *Date
	TripType       TripType
	PriceThreshold decimal.Decimal
}

// Route renders "LAX → JFK".
func (d *AlertDetails) Route() string {
	return d.Origin + " → " + d.Destination
}

// SearchRequest is a price provider query.
type SearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate Date
	ReturnDate    *Date
	TripType      TripType
	Limit         int
}

// Offer is a single priced flight option returned by the price provider.
type Offer struct {
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	DepartureDate   Date            `json:"departure_date"`
	ReturnDate      *Date           `json:"return_date,omitempty"`
	Airline         string          `json:"airline"`
	FlightNumber    string          `json:"flight_number"`
	Transfers       int             `json:"transfers"`
	ReturnTransfers int             `json:"return_transfers"`
	DurationMinutes int             `json:"duration_minutes"`
	Link            string          `json:"link,omitempty"`
}

// FormatPrice renders a monetary amount as "$420.00".
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
