package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flight-price-tracker/internal/api/handlers"
	storeMocks "github.com/donaldgifford/flight-price-tracker/internal/store/mocks"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

func TestPassesHandler_List(t *testing.T) {
	t.Parallel()

	started := time.Date(2030, 5, 1, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "default limit",
			path: "/api/v1/passes",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListPassRuns(mock.Anything, 20).Return([]domain.PassRun{
					{ID: "run-1", StartedAt: started, Status: domain.PassSucceeded, Eligible: 4, Notified: 2},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"succeeded"`,
		},
		{
			name: "explicit limit and empty result",
			path: "/api/v1/passes?limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListPassRuns(mock.Anything, 5).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"passes":[]`,
		},
		{
			name:       "limit out of range",
			path:       "/api/v1/passes?limit=1000",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/passes",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListPassRuns(mock.Anything, 20).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing passes failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterPassRoutes(api, handlers.NewPassesHandler(ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
