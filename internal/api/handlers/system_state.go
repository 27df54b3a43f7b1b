package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// SystemStateProvider reports alert counts and the most recent pass.
type SystemStateProvider interface {
	GetSystemState(ctx context.Context) (*domain.SystemState, error)
}

// PassStatus reports whether a pass is in progress.
type PassStatus interface {
	Running() bool
}

// SystemStateHandler handles GET /api/v1/system/state.
type SystemStateHandler struct {
	store  SystemStateProvider
	passes PassStatus
}

// NewSystemStateHandler creates a SystemStateHandler. passes may be nil.
func NewSystemStateHandler(s SystemStateProvider, passes PassStatus) *SystemStateHandler {
	return &SystemStateHandler{store: s, passes: passes}
}

// SystemStateOutput is the response for GET /api/v1/system/state.
type SystemStateOutput struct {
	Body struct {
		AlertsTotal    int             `json:"alerts_total"`
		AlertsActive   int             `json:"alerts_active"`
		AlertsEligible int             `json:"alerts_eligible"`
		LastPass       *domain.PassRun `json:"last_pass,omitempty"`
		PassRunning    bool            `json:"pass_running" doc:"Whether a price check pass is in progress"`
	}
}

// GetSystemState returns alert counts, the last pass run, and whether a
// pass is running now.
func (h *SystemStateHandler) GetSystemState(
	ctx context.Context,
	_ *struct{},
) (*SystemStateOutput, error) {
	state, err := h.store.GetSystemState(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get system state")
	}

	out := &SystemStateOutput{}
	out.Body.AlertsTotal = state.AlertsTotal
	out.Body.AlertsActive = state.AlertsActive
	out.Body.AlertsEligible = state.AlertsEligible
	out.Body.LastPass = state.LastPass
	if h.passes != nil {
		out.Body.PassRunning = h.passes.Running()
	}
	return out, nil
}

// RegisterSystemStateRoutes registers the system state route on the Huma API.
func RegisterSystemStateRoutes(api huma.API, h *SystemStateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-system-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/system/state",
		Summary:     "Get system state",
		Description: "Returns total, active, and eligible alert counts, the most recent pass, " +
			"and whether a pass is running.",
		Tags: []string{"system"},
	}, h.GetSystemState)
}
