package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/donaldgifford/flight-price-tracker/internal/metrics"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

const (
	defaultBaseURL    = "https://test.api.amadeus.com"
	flightOffersPath  = "/v2/shopping/flight-offers"
	defaultCurrency   = "USD"
	maxResultsPerCall = 250
	defaultLimit      = 10
	instrumentation   = "github.com/donaldgifford/flight-price-tracker/internal/amadeus"
)

// Client implements FlightSearcher using the Flight Offers Search API.
type Client struct {
	tokens      TokenProvider
	baseURL     string
	currency    string
	nonStop     bool
	client      *http.Client
	rateLimiter *RateLimiter
	latency     metric.Float64Histogram
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API origin.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithCurrency sets the currency offers are priced in.
func WithCurrency(code string) ClientOption {
	return func(c *Client) {
		if code != "" {
			c.currency = code
		}
	}
}

// WithNonStop restricts searches to direct flights.
func WithNonStop(nonStop bool) ClientOption {
	return func(c *Client) {
		c.nonStop = nonStop
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every SearchOffers call
// goes through Wait first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// NewClient creates a new flight-offers client.
func NewClient(tokens TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		tokens:   tokens,
		baseURL:  defaultBaseURL,
		currency: defaultCurrency,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	latency, err := otel.Meter(instrumentation).Float64Histogram(
		"amadeus.search.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Latency of flight-offers searches."),
	)
	if err != nil {
		latency = noop.Float64Histogram{}
	}
	c.latency = latency
	return c
}

// Quota reports the daily search budget. Without a rate limiter the budget
// is unbounded and reported as zero.
func (c *Client) Quota() Quota {
	if c.rateLimiter == nil {
		return Quota{}
	}
	return c.rateLimiter.Quota()
}

// SearchOffers implements FlightSearcher. Offers are returned cheapest
// first, at most req.Limit of them.
func (c *Client) SearchOffers(
	ctx context.Context,
	req domain.SearchRequest,
) ([]domain.Offer, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.ProviderDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.ProviderDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}
	metrics.ProviderCallsTotal.Inc()

	offers, err := c.search(ctx, req)
	if err != nil {
		metrics.ProviderErrorsTotal.Inc()
		return nil, err
	}
	return offers, nil
}

func (c *Client) search(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildSearchURL(req), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/vnd.amadeus+json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	c.latency.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Bool("error", err != nil)))
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var apiResp flightOffersResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return ToOffers(apiResp.Data, resultLimit(req.Limit)), nil
}

func resultLimit(n int) int {
	if n <= 0 {
		return defaultLimit
	}
	return min(n, maxResultsPerCall)
}

func (c *Client) buildSearchURL(req domain.SearchRequest) string {
	params := url.Values{}
	params.Set("originLocationCode", req.Origin)
	params.Set("destinationLocationCode", req.Destination)
	params.Set("departureDate", req.DepartureDate.String())
	if req.TripType == domain.TripRoundTrip && req.ReturnDate != nil {
		params.Set("returnDate", req.ReturnDate.String())
	}
	params.Set("adults", "1")
	params.Set("currencyCode", c.currency)
	params.Set("max", strconv.Itoa(resultLimit(req.Limit)))
	if c.nonStop {
		params.Set("nonStop", "true")
	}

	return c.baseURL + flightOffersPath + "?" + params.Encode()
}
