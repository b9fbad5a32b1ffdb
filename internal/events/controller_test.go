package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetPublishedEvent(ctx context.Context, id int64) (*Event, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ListUpcoming(ctx context.Context) ([]EventResponse, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]EventResponse)
	return events, args.Error(1)
}

func (m *mockService) InvalidateUpcoming(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newListingEngine(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	ctrl := NewController(svc)
	SetupEventRoutes(engine.Group("/api/v1"), ctrl)
	SetupLegacyEventRoutes(engine, ctrl)
	return engine
}

func TestListUpcomingHandler(t *testing.T) {
	svc := new(mockService)
	svc.On("ListUpcoming", mock.Anything).Return([]EventResponse{
		{ID: 3, Title: "Sauti Sol Live", StandardAvailable: 990, VIPAvailable: 100, AvailableTickets: 1090},
	}, nil)
	engine := newListingEngine(svc)

	for _, path := range []string{"/api/v1/events", "/api_get_events.py"} {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body struct {
			Success bool            `json:"success"`
			Data    []EventResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Sauti Sol Live", body.Data[0].Title)
		assert.Equal(t, 1090, body.Data[0].AvailableTickets)
	}
}

func TestListUpcomingHandlerFailure(t *testing.T) {
	svc := new(mockService)
	svc.On("ListUpcoming", mock.Anything).Return(nil, errors.New("connection refused"))
	engine := newListingEngine(svc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unable to load events"}`, rec.Body.String())
}
