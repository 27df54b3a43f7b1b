package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// AlertFilter narrows ListAlerts. Empty fields are not sent.
type AlertFilter struct {
	Active      string // "true", "false", or ""
	Verified    string
	Origin      string
	Destination string
	Email       string
	Limit       int
	Offset      int
	OrderBy     string
}

func (f *AlertFilter) values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("active", f.Active)
	set("verified", f.Verified)
	set("origin", f.Origin)
	set("destination", f.Destination)
	set("email", f.Email)
	set("order_by", f.OrderBy)
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return v
}

// AlertList is one page of alerts.
type AlertList struct {
	Alerts []domain.Alert `json:"alerts"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CreateAlertRequest is the body of POST /api/v1/alerts.
type CreateAlertRequest struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureDate  string `json:"departure_date"`
	ReturnDate     string `json:"return_date,omitempty"`
	TripType       string `json:"trip_type"`
	PriceThreshold string `json:"price_threshold"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// CreatedAlert is the response to CreateAlert.
type CreatedAlert struct {
	Alert                 *domain.Alert `json:"alert"`
	VerificationEmailSent bool          `json:"verification_email_sent"`
	VerificationSMSSent   bool          `json:"verification_sms_sent"`
}

// ListAlerts returns a page of alerts.
func (c *Client) ListAlerts(ctx context.Context, f *AlertFilter) (*AlertList, error) {
	var out AlertList
	if f == nil {
		f = &AlertFilter{}
	}
	if err := c.get(ctx, "/api/v1/alerts", f.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAlert returns a single alert by ID.
func (c *Client) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	var a domain.Alert
	if err := c.get(ctx, "/api/v1/alerts/"+url.PathEscape(id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAlert creates a new alert.
func (c *Client) CreateAlert(ctx context.Context, req *CreateAlertRequest) (*CreatedAlert, error) {
	var out CreatedAlert
	if err := c.post(ctx, "/api/v1/alerts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateAlert stops price checks for an alert.
func (c *Client) DeactivateAlert(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/deactivate", nil, nil)
}

// VerifyPhone submits the SMS verification code for an alert.
func (c *Client) VerifyPhone(ctx context.Context, id, code string) (*domain.Alert, error) {
	var a domain.Alert
	body := map[string]string{"code": code}
	if err := c.post(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/verify-phone", body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
