// Package amadeus provides an Amadeus Self-Service flight-offers client
// abstracted behind interfaces for testability.
package amadeus

import (
	"context"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// FlightSearcher defines the interface for querying flight offers.
type FlightSearcher interface {
	SearchOffers(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// QuotaReporter exposes provider call quota for the API.
type QuotaReporter interface {
	Quota() Quota
}
