package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flight-price-tracker/internal/amadeus"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// OfferSearcher queries the flight price provider.
type OfferSearcher interface {
	SearchOffers(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error)
}

// SearchHandler handles ad-hoc offer searches.
type SearchHandler struct {
	provider OfferSearcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(p OfferSearcher) *SearchHandler {
	return &SearchHandler{provider: p}
}

// SearchInput is the query for the search endpoint.
type SearchInput struct {
	Origin        string `query:"origin"         required:"true" doc:"Origin airport IATA code"      example:"LAX" pattern:"^[A-Za-z]{3}$"`
	Destination   string `query:"destination"    required:"true" doc:"Destination airport IATA code" example:"JFK" pattern:"^[A-Za-z]{3}$"`
	DepartureDate string `query:"departure_date" required:"true" doc:"Outbound date"                 example:"2030-06-01" format:"date"`
	ReturnDate    string `query:"return_date"                    doc:"Return date; makes the search round-trip" example:"2030-06-10"`
	Limit         int    `query:"limit"                          doc:"Maximum offers to return"      default:"10" minimum:"1" maximum:"250"`
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Offers []domain.Offer `json:"offers" doc:"Offers, cheapest first"`
		Count  int            `json:"count"`
	}
}

// Search runs a provider search for one route and date.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	req, err := searchRequest(input)
	if err != nil {
		return nil, err
	}

	offers, err := h.provider.SearchOffers(ctx, req)
	if err != nil {
		if errors.Is(err, amadeus.ErrDailyLimitReached) {
			return nil, huma.Error429TooManyRequests("daily provider quota exhausted")
		}
		return nil, huma.Error502BadGateway("provider error: " + err.Error())
	}
	if offers == nil {
		offers = []domain.Offer{}
	}

	out := &SearchOutput{}
	out.Body.Offers = offers
	out.Body.Count = len(offers)
	return out, nil
}

func searchRequest(input *SearchInput) (domain.SearchRequest, error) {
	dep, err := domain.ParseDate(input.DepartureDate)
	if err != nil {
		return domain.SearchRequest{}, huma.Error422UnprocessableEntity("departure_date must be YYYY-MM-DD")
	}

	alert := domain.Alert{
		Origin:        strings.ToUpper(input.Origin),
		Destination:   strings.ToUpper(input.Destination),
		DepartureDate: dep,
		TripType:      domain.TripOneWay,
	}
	if input.ReturnDate != "" {
		rd, err := domain.ParseDate(input.ReturnDate)
		if err != nil {
			return domain.SearchRequest{}, huma.Error422UnprocessableEntity("return_date must be YYYY-MM-DD")
		}
		alert.ReturnDate = &rd
		alert.TripType = domain.TripRoundTrip
	}
	if err := alert.Validate(); err != nil {
		return domain.SearchRequest{}, huma.Error422UnprocessableEntity(err.Error())
	}
	return alert.SearchRequest(input.Limit), nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-offers",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search flight offers",
		Description: "Queries the price provider for one route and date and returns offers cheapest first.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.Search)
}
