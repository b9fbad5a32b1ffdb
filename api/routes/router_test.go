package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itickets/internal/shared/config"
	"itickets/internal/shared/database"
	"itickets/internal/shared/database/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, _ := dbtest.NewMockDB(t)
	engine := gin.New()
	NewRouter(config.Load(), &database.DB{PostgreSQL: gdb}, nil).SetupRoutes(engine)
	return engine
}

func TestRoutesAnswerWithEnvelope(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		method, path string
		status       int
		body         string
	}{
		{http.MethodGet, "/api_book_ticket.py", http.StatusMethodNotAllowed, `{"success":false,"message":"Method not allowed"}`},
		{http.MethodPut, "/api/v1/bookings", http.StatusMethodNotAllowed, `{"success":false,"message":"Method not allowed"}`},
		{http.MethodGet, "/api/v1/nothing-here", http.StatusNotFound, `{"success":false,"message":"Resource not found"}`},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, tt.status, rec.Code, tt.path)
		assert.JSONEq(t, tt.body, rec.Body.String(), tt.path)
	}
}

func TestBookingValidationNeedsNoDatabase(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api_book_ticket.py",
		strings.NewReader(`{"eventId":1,"fullName":"A","email":"a@b.co","phone":"1","idNumber":"2","standardQty":0,"vipQty":0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Please select at least one ticket"}`, rec.Body.String())
}

func TestPing(t *testing.T) {
	engine := newTestEngine(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pong"`)
}

func TestHealthHidesStorageError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := dbtest.NewMockDB(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	mock.ExpectClose()
	require.NoError(t, sqlDB.Close())

	engine := gin.New()
	NewRouter(config.Load(), &database.DB{PostgreSQL: gdb}, nil).SetupRoutes(engine)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"storage unavailable"`)
	assert.NotContains(t, rec.Body.String(), "closed")
	assert.NotContains(t, rec.Body.String(), "PostgreSQL")
}
