package subscription

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// ErrValidation is wrapped by every NewAlert validation failure.
var ErrValidation = errors.New("validation failed")

var (
	iataRe  = regexp.MustCompile(`^[A-Z]{3}$`)
	e164Re  = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)
	phoneRe = regexp.MustCompile(`[\s().-]`)
)

// NewAlert is a request to watch a route.
type NewAlert struct {
	Origin         string
	Destination    string
	DepartureDate  domain.Date
	ReturnDate     *domain.Date
	TripType       domain.TripType
	PriceThreshold decimal.Decimal
	Email          string
	Phone          string
}

// normalize validates the request against today and returns the alert to
// store. Every problem is reported, not just the first.
func (n *NewAlert) normalize(today domain.Date) (*domain.Alert, error) {
	a := &domain.Alert{
		Origin:         strings.ToUpper(strings.TrimSpace(n.Origin)),
		Destination:    strings.ToUpper(strings.TrimSpace(n.Destination)),
		DepartureDate:  n.DepartureDate,
		TripType:       n.TripType,
		PriceThreshold: n.PriceThreshold,
		IsActive:       true,
		Email:          strings.ToLower(strings.TrimSpace(n.Email)),
		Phone:          phoneRe.ReplaceAllString(strings.TrimSpace(n.Phone), ""),
	}
	if n.ReturnDate != nil && !n.ReturnDate.IsZero() {
		rd := *n.ReturnDate
		a.ReturnDate = &rd
	}

	var errs []error
	if !iataRe.MatchString(a.Origin) {
		errs = append(errs, fmt.Errorf("origin %q is not a 3-letter airport code", n.Origin))
	}
	if !iataRe.MatchString(a.Destination) {
		errs = append(errs, fmt.Errorf("destination %q is not a 3-letter airport code", n.Destination))
	}
	if a.Origin == a.Destination && a.Origin != "" {
		errs = append(errs, errors.New("origin and destination must differ"))
	}

	switch {
	case a.DepartureDate.IsZero():
		errs = append(errs, errors.New("departure date is required"))
	case a.DepartureDate.Before(today):
		errs = append(errs, fmt.Errorf("departure date %s is in the past", a.DepartureDate))
	}

	switch a.TripType {
	case domain.TripOneWay:
		if a.ReturnDate != nil {
			errs = append(errs, errors.New("one-way trips cannot have a return date"))
		}
	case domain.TripRoundTrip:
		if a.ReturnDate == nil {
			errs = append(errs, errors.New("round trips need a return date"))
		} else if a.ReturnDate.Before(a.DepartureDate) {
			errs = append(errs, errors.New("return date must be on or after departure"))
		}
	default:
		errs = append(errs, fmt.Errorf("trip type must be %q or %q", domain.TripOneWay, domain.TripRoundTrip))
	}

	if !a.PriceThreshold.IsPositive() {
		errs = append(errs, errors.New("price threshold must be greater than zero"))
	}

	if a.Email == "" && a.Phone == "" {
		errs = append(errs, errors.New("an email or phone number is required"))
	}
	if a.Email != "" {
		if _, err := mail.ParseAddress(a.Email); err != nil {
			errs = append(errs, fmt.Errorf("email %q is invalid", n.Email))
		}
	}
	if a.Phone != "" && !e164Re.MatchString(a.Phone) {
		errs = append(errs, fmt.Errorf("phone %q must be in +E.164 format", n.Phone))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
	}
	return a, nil
}
