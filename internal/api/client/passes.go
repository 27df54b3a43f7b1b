package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/flight-price-tracker/internal/amadeus"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// SearchParams is an ad-hoc offer search.
type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Limit         int
}

// SystemState is the response of GET /api/v1/system/state.
type SystemState struct {
	domain.SystemState
	PassRunning bool `json:"pass_running"`
}

// RunCheck runs a price check pass and returns its summary.
func (c *Client) RunCheck(ctx context.Context) (*domain.PassSummary, error) {
	var s domain.PassSummary
	if err := c.post(ctx, "/api/v1/check", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListPasses returns recent pass runs, newest first. A limit of zero uses
// the server default.
func (c *Client) ListPasses(ctx context.Context, limit int) ([]domain.PassRun, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Passes []domain.PassRun `json:"passes"`
	}
	if err := c.get(ctx, "/api/v1/passes", q, &out); err != nil {
		return nil, err
	}
	return out.Passes, nil
}

// Search queries the provider through the API.
func (c *Client) Search(ctx context.Context, p *SearchParams) ([]domain.Offer, error) {
	q := url.Values{}
	q.Set("origin", p.Origin)
	q.Set("destination", p.Destination)
	q.Set("departure_date", p.DepartureDate)
	if p.ReturnDate != "" {
		q.Set("return_date", p.ReturnDate)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	var out struct {
		Offers []domain.Offer `json:"offers"`
	}
	if err := c.get(ctx, "/api/v1/search", q, &out); err != nil {
		return nil, err
	}
	return out.Offers, nil
}

// Quota returns the provider's daily search budget.
func (c *Client) Quota(ctx context.Context) (*amadeus.Quota, error) {
	var q amadeus.Quota
	if err := c.get(ctx, "/api/v1/quota", nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SystemState returns alert counts and the last pass.
func (c *Client) SystemState(ctx context.Context) (*SystemState, error) {
	var s SystemState
	if err := c.get(ctx, "/api/v1/system/state", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
