package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/flight-price-tracker/internal/store"
	"github.com/donaldgifford/flight-price-tracker/internal/subscription"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// AlertService is the subscription surface the API drives.
type AlertService interface {
	Create(ctx context.Context, in *subscription.NewAlert) (*subscription.Created, error)
	Get(ctx context.Context, id string) (*domain.Alert, error)
	List(ctx context.Context, q *store.AlertQuery) ([]domain.Alert, int, error)
	Deactivate(ctx context.Context, id string) error
	VerifyPhone(ctx context.Context, alertID, code string) (*domain.Alert, error)
	VerifyEmail(ctx context.Context, token string) (*domain.Alert, error)
	Unsubscribe(ctx context.Context, token string) (*domain.Alert, error)
}

// AlertsHandler handles alert endpoints.
type AlertsHandler struct {
	svc AlertService
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(svc AlertService) *AlertsHandler {
	return &AlertsHandler{svc: svc}
}

// --- Input/Output types ---

// CreateAlertInput is the request body for creating an alert.
type CreateAlertInput struct {
	Body struct {
		Origin         string `json:"origin"                doc:"Origin airport IATA code"                example:"LAX" minLength:"3" maxLength:"3"`
		Destination    string `json:"destination"           doc:"Destination airport IATA code"           example:"JFK" minLength:"3" maxLength:"3"`
		DepartureDate  string `json:"departure_date"        doc:"Outbound date"                           example:"2030-06-01" format:"date"`
		ReturnDate     string `json:"return_date,omitempty" doc:"Return date, round trips only"           example:"2030-06-10" format:"date"`
		TripType       string `json:"trip_type"             doc:"Trip type"                               enum:"one-way,round-trip"`
		PriceThreshold string `json:"price_threshold"       doc:"Notify when an offer is below this price" example:"420.00" pattern:"^[0-9]+(\\.[0-9]{1,2})?$"`
		Email          string `json:"email,omitempty"       doc:"Email contact"                           example:"traveler@example.com"`
		Phone          string `json:"phone,omitempty"       doc:"SMS contact in E.164 format"             example:"+15551234567"`
	}
}

// CreateAlertOutput is the response for creating an alert.
type CreateAlertOutput struct {
	Body struct {
		Alert                 *domain.Alert `json:"alert"`
		VerificationEmailSent bool          `json:"verification_email_sent"`
		VerificationSMSSent   bool          `json:"verification_sms_sent"`
	}
}

// ListAlertsInput is the input for listing alerts.
type ListAlertsInput struct {
	Active      string `query:"active"      doc:"Filter by active flag"                enum:"true,false,"`
	Verified    string `query:"verified"    doc:"Filter by having a verified contact"  enum:"true,false,"`
	Origin      string `query:"origin"      doc:"Filter by origin IATA code"`
	Destination string `query:"destination" doc:"Filter by destination IATA code"`
	Email       string `query:"email"       doc:"Filter by email contact"`
	Limit       int    `query:"limit"       doc:"Number of results (default 50)"                                         minimum:"0" maximum:"500"`
	Offset      int    `query:"offset"      doc:"Pagination offset"                                                      minimum:"0"`
	OrderBy     string `query:"order_by"    doc:"Sort field"                           enum:"created_at,departure_date,price_threshold,"`
}

// ListAlertsOutput is the response for listing alerts.
type ListAlertsOutput struct {
	Body struct {
		Alerts []domain.Alert `json:"alerts"`
		Total  int            `json:"total"`
		Limit  int            `json:"limit"`
		Offset int            `json:"offset"`
	}
}

// AlertIDInput names a single alert.
type AlertIDInput struct {
	ID string `path:"id" doc:"Alert ID"`
}

// AlertOutput wraps a single alert.
type AlertOutput struct {
	Body *domain.Alert
}

// StatusOutput wraps a StatusResponse.
type StatusOutput struct {
	Body StatusResponse
}

// VerifyPhoneInput carries the SMS verification code.
type VerifyPhoneInput struct {
	ID   string `path:"id" doc:"Alert ID"`
	Body struct {
		Code string `json:"code" doc:"6-digit code sent by SMS" example:"123456" pattern:"^[0-9]{6}$"`
	}
}

// --- Handlers ---

// Create validates and stores a new alert and sends verification messages.
func (h *AlertsHandler) Create(ctx context.Context, input *CreateAlertInput) (*CreateAlertOutput, error) {
	req, err := newAlertRequest(input)
	if err != nil {
		return nil, err
	}

	created, err := h.svc.Create(ctx, req)
	if err != nil {
		return nil, alertError("creating alert", err)
	}

	resp := &CreateAlertOutput{}
	resp.Body.Alert = created.Alert
	resp.Body.VerificationEmailSent = created.VerificationEmailSent
	resp.Body.VerificationSMSSent = created.VerificationSMSSent
	return resp, nil
}

func newAlertRequest(input *CreateAlertInput) (*subscription.NewAlert, error) {
	b := &input.Body

	dep, err := domain.ParseDate(b.DepartureDate)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("departure_date must be YYYY-MM-DD")
	}
	price, err := decimal.NewFromString(b.PriceThreshold)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("price_threshold is not a number")
	}

	req := &subscription.NewAlert{
		Origin:         b.Origin,
		Destination:    b.Destination,
		DepartureDate:  dep,
		TripType:       domain.TripType(b.TripType),
		PriceThreshold: price,
		Email:          b.Email,
		Phone:          b.Phone,
	}
	if b.ReturnDate != "" {
		rd, err := domain.ParseDate(b.ReturnDate)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("return_date must be YYYY-MM-DD")
		}
		req.ReturnDate = &rd
	}
	return req, nil
}

// List returns alerts with optional filters and pagination.
func (h *AlertsHandler) List(ctx context.Context, input *ListAlertsInput) (*ListAlertsOutput, error) {
	q := &store.AlertQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Active != "" {
		active := input.Active == "true"
		q.Active = &active
	}
	if input.Verified != "" {
		verified := input.Verified == "true"
		q.Verified = &verified
	}
	if input.Origin != "" {
		q.Origin = &input.Origin
	}
	if input.Destination != "" {
		q.Destination = &input.Destination
	}
	if input.Email != "" {
		q.Email = &input.Email
	}

	alerts, total, err := h.svc.List(ctx, q)
	if err != nil {
		return nil, alertError("listing alerts", err)
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	resp := &ListAlertsOutput{}
	resp.Body.Alerts = alerts
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Get returns one alert.
func (h *AlertsHandler) Get(ctx context.Context, input *AlertIDInput) (*AlertOutput, error) {
	a, err := h.svc.Get(ctx, input.ID)
	if err != nil {
		return nil, alertError("getting alert", err)
	}
	return &AlertOutput{Body: a}, nil
}

// Deactivate stops price checks for an alert without deleting it.
func (h *AlertsHandler) Deactivate(ctx context.Context, input *AlertIDInput) (*StatusOutput, error) {
	if err := h.svc.Deactivate(ctx, input.ID); err != nil {
		return nil, alertError("deactivating alert", err)
	}
	return &StatusOutput{Body: StatusResponse{Status: "deactivated"}}, nil
}

// VerifyPhone confirms the SMS contact with the code it was sent.
func (h *AlertsHandler) VerifyPhone(ctx context.Context, input *VerifyPhoneInput) (*AlertOutput, error) {
	a, err := h.svc.VerifyPhone(ctx, input.ID, input.Body.Code)
	if err != nil {
		return nil, alertError("verifying phone", err)
	}
	return &AlertOutput{Body: a}, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts",
		Summary:       "Create an alert",
		Description:   "Stores a price alert and sends a verification message to each contact.",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alerts",
		Description: "Returns alerts with optional filters for status, route, and contact.",
		Tags:        []string{"alerts"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-alert",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Get an alert by ID",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "deactivate-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/deactivate",
		Summary:     "Deactivate an alert",
		Description: "Soft-disables an alert. It stays stored but is no longer price checked.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.Deactivate)

	huma.Register(api, huma.Operation{
		OperationID: "verify-alert-phone",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/verify-phone",
		Summary:     "Verify the SMS contact",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.VerifyPhone)
}
