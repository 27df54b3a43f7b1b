package engine

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

func withAlertAttrs(a *domain.Alert) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("alert.id", a.ID),
		attribute.String("alert.origin", a.Origin),
		attribute.String("alert.destination", a.Destination),
		attribute.String("alert.departure_date", a.DepartureDate.String()),
	)
}
