package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flight-price-tracker/internal/engine"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// PassRunner runs a full price check pass.
type PassRunner interface {
	RunPass(ctx context.Context) (*domain.PassSummary, error)
}

// CheckHandler handles manual pass trigger requests.
type CheckHandler struct {
	runner PassRunner
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(r PassRunner) *CheckHandler {
	return &CheckHandler{runner: r}
}

// CheckOutput is the response body for the check endpoint.
type CheckOutput struct {
	Body *domain.PassSummary
}

// Check runs a pass synchronously and returns its summary. A pass already in
// progress, scheduled or manual, yields 409.
func (h *CheckHandler) Check(ctx context.Context, _ *struct{}) (*CheckOutput, error) {
	summary, err := h.runner.RunPass(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrPassInProgress) {
			return nil, huma.Error409Conflict("a price check pass is already running")
		}
		return nil, huma.Error500InternalServerError("price check failed: " + err.Error())
	}
	return &CheckOutput{Body: summary}, nil
}

// RegisterCheckRoutes registers the pass trigger endpoint with the Huma API.
func RegisterCheckRoutes(api huma.API, h *CheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/check",
		Summary:     "Run a price check pass",
		Description: "Checks every eligible alert against current offers, " +
			"sends price-drop and expiry notices, and returns the pass summary.",
		Tags:   []string{"check"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Check)
}
