package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// TokenInput carries a token from an emailed link.
type TokenInput struct {
	Token string `query:"token" required:"true" doc:"Token from the emailed link"`
}

// LinkOutput is the response for the emailed link targets.
type LinkOutput struct {
	Body struct {
		Status  string `json:"status"   example:"verified"`
		AlertID string `json:"alert_id" example:"0b6f8c1e-6a2f-4b8e-9d8e-3c2b1a0f9e8d"`
		Route   string `json:"route"    example:"LAX → JFK"`
	}
}

// VerifyEmail confirms the email contact named by the token.
func (h *AlertsHandler) VerifyEmail(ctx context.Context, input *TokenInput) (*LinkOutput, error) {
	a, err := h.svc.VerifyEmail(ctx, input.Token)
	if err != nil {
		return nil, alertError("verifying email", err)
	}
	return linkOutput("verified", a.ID, a.Origin, a.Destination), nil
}

// Unsubscribe deletes the alert named by a signed unsubscribe token.
func (h *AlertsHandler) Unsubscribe(ctx context.Context, input *TokenInput) (*LinkOutput, error) {
	a, err := h.svc.Unsubscribe(ctx, input.Token)
	if err != nil {
		return nil, alertError("unsubscribing", err)
	}
	return linkOutput("unsubscribed", a.ID, a.Origin, a.Destination), nil
}

func linkOutput(status, id, origin, destination string) *LinkOutput {
	out := &LinkOutput{}
	out.Body.Status = status
	out.Body.AlertID = id
	out.Body.Route = origin + " → " + destination
	return out
}

// RegisterSubscriptionRoutes registers the targets of links sent in
// notifications.
func RegisterSubscriptionRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "verify-email",
		Method:      http.MethodGet,
		Path:        "/verify-email",
		Summary:     "Verify an email contact",
		Tags:        []string{"subscriptions"},
		Errors:      []int{http.StatusNotFound},
	}, h.VerifyEmail)

	huma.Register(api, huma.Operation{
		OperationID: "unsubscribe",
		Method:      http.MethodGet,
		Path:        "/unsubscribe",
		Summary:     "Unsubscribe from an alert",
		Description: "Deletes the alert named by a signed token and notifies its verified contacts.",
		Tags:        []string{"subscriptions"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Unsubscribe)
}
