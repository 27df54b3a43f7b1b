package links

import (
	"fmt"
	"net/url"
	"strings"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// Builder renders absolute links against the public base URL.
type Builder struct {
	baseURL string
	signer  *Signer
}

// NewBuilder creates a Builder. Trailing slashes on baseURL are ignored.
func NewBuilder(baseURL string, signer *Signer) *Builder {
	return &Builder{
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  signer,
	}
}

// Search links to the results page for the alert's route and dates.
func (b *Builder) Search(d *domain.AlertDetails) string {
	var q strings.Builder
	q.WriteString("origin=" + url.QueryEscape(d.Origin))
	q.WriteString("&destination=" + url.QueryEscape(d.Destination))
	q.WriteString("&departure_date=" + d.DepartureDate.String())
	if d.ReturnDate != nil {
		q.WriteString("&return_date=" + d.ReturnDate.String())
	}
	q.WriteString("&trip_type=" + url.QueryEscape(string(d.TripType)))

	return b.baseURL + "/search?" + q.String()
}

// Unsubscribe links to the one-click delete endpoint with a signed token.
func (b *Builder) Unsubscribe(alertID string) (string, error) {
	token, err := b.signer.Sign(alertID)
	if err != nil {
		return "", fmt.Errorf("building unsubscribe link: %w", err)
	}
	return b.baseURL + "/unsubscribe?token=" + url.QueryEscape(token), nil
}

// VerifyEmail links to the email verification endpoint.
func (b *Builder) VerifyEmail(token string) string {
	return b.baseURL + "/verify-email?token=" + url.QueryEscape(token)
}

// Home links to the landing page.
func (b *Builder) Home() string {
	return b.baseURL + "/"
}
