package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flight-price-tracker/internal/amadeus"
)

// QuotaSource reports the provider's daily search budget.
type QuotaSource interface {
	Quota() amadeus.Quota
}

// QuotaHandler provides the provider quota status endpoint.
type QuotaHandler struct {
	src QuotaSource
}

// NewQuotaHandler creates a new QuotaHandler. A nil source reports zeroes.
func NewQuotaHandler(src QuotaSource) *QuotaHandler {
	return &QuotaHandler{src: src}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64     `json:"daily_limit" example:"2000"                 doc:"Configured daily search limit"`
		DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"Searches used in the current 24-hour window"`
		Remaining  int64     `json:"remaining"   example:"1858"                 doc:"Searches remaining in the current window"`
		ResetAt    time.Time `json:"reset_at"    example:"2030-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current provider quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.src == nil {
		return resp, nil
	}

	q := h.src.Quota()
	resp.Body.DailyLimit = q.DailyLimit
	resp.Body.DailyUsed = q.DailyUsed
	resp.Body.Remaining = q.Remaining
	resp.Body.ResetAt = q.ResetAt
	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get provider quota status",
		Description: "Returns the daily flight-offers search usage, remaining quota, and window reset time.",
		Tags:        []string{"provider"},
	}, h.GetQuota)
}
