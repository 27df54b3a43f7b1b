package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flight-price-tracker/internal/api/handlers"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

type mockSystemStateProvider struct {
	state *domain.SystemState
	err   error
}

func (m *mockSystemStateProvider) GetSystemState(_ context.Context) (*domain.SystemState, error) {
	return m.state, m.err
}

type runningFlag bool

func (r runningFlag) Running() bool { return bool(r) }

func TestGetSystemState_Success(t *testing.T) {
	t.Parallel()

	state := &domain.SystemState{
		AlertsTotal:    7,
		AlertsActive:   5,
		AlertsEligible: 3,
		LastPass:       &domain.PassRun{ID: "run-9", Status: domain.PassInterrupted},
	}

	h := handlers.NewSystemStateHandler(&mockSystemStateProvider{state: state}, runningFlag(true))

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"alerts_total":7`)
	assert.Contains(t, body, `"alerts_eligible":3`)
	assert.Contains(t, body, `"status":"interrupted"`)
	assert.Contains(t, body, `"pass_running":true`)
}

func TestGetSystemState_NoPassStatus(t *testing.T) {
	t.Parallel()

	h := handlers.NewSystemStateHandler(&mockSystemStateProvider{state: &domain.SystemState{}}, nil)

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"pass_running":false`)
	assert.NotContains(t, resp.Body.String(), "last_pass")
}

func TestGetSystemState_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewSystemStateHandler(&mockSystemStateProvider{err: errors.New("db error")}, nil)

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
