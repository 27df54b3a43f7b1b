// Package handlers implements the HTTP API for flight-price-tracker.
package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flight-price-tracker/internal/links"
	"github.com/donaldgifford/flight-price-tracker/internal/store"
	"github.com/donaldgifford/flight-price-tracker/internal/subscription"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// alertError maps a subscription or store error to an HTTP error.
func alertError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("alert not found")
	case errors.Is(err, subscription.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, subscription.ErrInvalidCode):
		return huma.Error400BadRequest("invalid verification code")
	case errors.Is(err, links.ErrInvalidToken):
		return huma.Error400BadRequest("invalid or expired link")
	default:
		return huma.Error500InternalServerError(op + " failed: " + err.Error())
	}
}
