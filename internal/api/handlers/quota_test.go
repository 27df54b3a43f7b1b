package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flight-price-tracker/internal/amadeus"
	"github.com/donaldgifford/flight-price-tracker/internal/api/handlers"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rl       *amadeus.RateLimiter
		preCalls int
		wantBody []string
	}{
		{
			name:     "no source returns zeroes",
			wantBody: []string{`"daily_limit":0`, `"remaining":0`},
		},
		{
			name:     "fresh rate limiter",
			rl:       amadeus.NewRateLimiter(100, 10, 2000),
			wantBody: []string{`"daily_limit":2000`, `"daily_used":0`, `"remaining":2000`},
		},
		{
			name:     "rate limiter with usage",
			rl:       amadeus.NewRateLimiter(100, 10, 100),
			preCalls: 3,
			wantBody: []string{`"daily_used":3`, `"remaining":97`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *handlers.QuotaHandler
			if tt.rl != nil {
				for range tt.preCalls {
					require.NoError(t, tt.rl.Wait(t.Context()))
				}
				h = handlers.NewQuotaHandler(tt.rl)
			} else {
				h = handlers.NewQuotaHandler(nil)
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, h)

			resp := api.Get("/api/v1/quota")
			require.Equal(t, http.StatusOK, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestGetQuota_ResetAtValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := amadeus.NewRateLimiter(
		5, 10, 2000,
		amadeus.WithRateLimiterNowFunc(func() time.Time { return now }),
	)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "2030-06-16T14:30:00Z")
}
