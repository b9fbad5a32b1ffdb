package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"itickets/internal/notifications"
	"itickets/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error) {
	args := m.Called(ctx, req)
	if c, ok := args.Get(0).(*BookingConfirmation); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) SetPublisher(notifications.Publisher)    {}
func (m *mockService) SetListingInvalidator(ListingInvalidator) {}

func newTestEngine(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(response.MethodNotAllowed)

	ctrl := NewController(svc)
	SetupBookingRoutes(engine.Group("/api/v1"), ctrl)
	SetupLegacyBookingRoutes(engine, ctrl)
	return engine
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var confirmation = &BookingConfirmation{
	BookingReference: "ITECH-7K2M9QX4PT",
	TotalAmount:      7000,
	EventTitle:       "Sauti Sol Live",
	EventDate:        "2026-11-20T18:30:00Z",
	Tickets:          TicketCounts{Standard: 2, VIP: 1},
}

func TestCreateBookingJSON(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateBooking", mock.Anything, CreateBookingRequest{
		EventID:     7,
		FullName:    "Wanjiru Kamau",
		Email:       "wanjiru@example.com",
		Phone:       "0712345678",
		IDNumber:    "30123456",
		StandardQty: 2,
		VIPQty:      1,
	}).Return(confirmation, nil)

	body := `{"eventId":"7","fullName":"Wanjiru Kamau","email":"wanjiru@example.com",` +
		`"phone":"0712345678","idNumber":"30123456","standardQty":2,"vipQty":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestEngine(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeEnvelope(t, rec)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Booking created successfully", got["message"])

	data := got["data"].(map[string]interface{})
	assert.Equal(t, "ITECH-7K2M9QX4PT", data["bookingReference"])
	assert.EqualValues(t, 7000, data["totalAmount"])
	assert.Equal(t, "Sauti Sol Live", data["eventTitle"])
	assert.Equal(t, map[string]interface{}{"standard": 2.0, "vip": 1.0}, data["tickets"])
	svc.AssertExpectations(t)
}

func TestCreateBookingFormOnLegacyPath(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateBooking", mock.Anything, CreateBookingRequest{
		EventID:     7,
		FullName:    "Wanjiru Kamau",
		Email:       "wanjiru@example.com",
		Phone:       "0712345678",
		IDNumber:    "30123456",
		StandardQty: 0,
		VIPQty:      2,
	}).Return(confirmation, nil)

	form := url.Values{
		"eventId":  {"7"},
		"fullName": {"Wanjiru Kamau"},
		"email":    {"wanjiru@example.com"},
		"phone":    {"0712345678"},
		"idNumber": {"30123456"},
		"vipQty":   {"2"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api_book_ticket.php", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newTestEngine(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateBookingRejectsOtherMethods(t *testing.T) {
	svc := new(mockService)
	rec := httptest.NewRecorder()

	newTestEngine(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api_book_ticket.py", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	got := decodeEnvelope(t, rec)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Method not allowed", got["message"])
	svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingBadBody(t *testing.T) {
	svc := new(mockService)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"eventId":7,"fullName":123}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestEngine(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid value for field: fullName", decodeEnvelope(t, rec)["message"])
	svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsOutOfRangeQuantity(t *testing.T) {
	svc := new(mockService)
	form := url.Values{"eventId": {"7"}, "standardQty": {"9223372036854775807"}, "vipQty": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/api_book_ticket.php", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newTestEngine(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingMapsBookingErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", validationError("email", "Missing required field: email"), http.StatusBadRequest, "Missing required field: email"},
		{"sold out", soldOut("vip", errors.New("none left")), http.StatusBadRequest, "Not enough VIP tickets available"},
		{"storage", storageFailure("commit", errors.New("pq: deadlock detected")), http.StatusInternalServerError, storageFailureMessage},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, storageFailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"eventId":7}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			newTestEngine(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			got := decodeEnvelope(t, rec)
			assert.Equal(t, false, got["success"])
			assert.Equal(t, tt.message, got["message"])
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}
