package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// PassLister reads recent pass run records.
type PassLister interface {
	ListPassRuns(ctx context.Context, limit int) ([]domain.PassRun, error)
}

// PassesHandler handles GET /api/v1/passes.
type PassesHandler struct {
	store PassLister
}

// NewPassesHandler creates a PassesHandler.
func NewPassesHandler(s PassLister) *PassesHandler {
	return &PassesHandler{store: s}
}

// ListPassesInput is the input for listing pass runs.
type ListPassesInput struct {
	Limit int `query:"limit" doc:"Number of runs to return" default:"20" minimum:"1" maximum:"200"`
}

// ListPassesOutput is the response for listing pass runs.
type ListPassesOutput struct {
	Body struct {
		Passes []domain.PassRun `json:"passes"`
	}
}

// List returns the most recent pass runs, newest first.
func (h *PassesHandler) List(ctx context.Context, input *ListPassesInput) (*ListPassesOutput, error) {
	runs, err := h.store.ListPassRuns(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing passes failed: " + err.Error())
	}
	if runs == nil {
		runs = []domain.PassRun{}
	}

	resp := &ListPassesOutput{}
	resp.Body.Passes = runs
	return resp, nil
}

// RegisterPassRoutes registers the pass history endpoint with the Huma API.
func RegisterPassRoutes(api huma.API, h *PassesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-passes",
		Method:      http.MethodGet,
		Path:        "/api/v1/passes",
		Summary:     "List pass runs",
		Description: "Returns recent price check passes with per-outcome counts.",
		Tags:        []string{"check"},
	}, h.List)
}
