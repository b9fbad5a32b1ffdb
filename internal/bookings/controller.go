package bookings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"itickets/internal/shared/utils/response"
	"itickets/pkg/logger"
)

type Controller interface {
	CreateBooking(c *gin.Context)
}

type controller struct {
	service Service
	logger  *logger.Logger
}

func NewController(service Service) Controller {
	return &controller{service: service, logger: logger.GetDefault()}
}

// CreateBooking godoc
// @Summary Book tickets
// @Description Books standard and VIP tickets for a published event in one transaction
// @Tags bookings
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body CreateBookingRequest true "Booking details"
// @Success 200 {object} response.StandardApiResponse{data=BookingConfirmation}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 405 {object} response.StandardApiResponse
// @Failure 500 {object} response.StandardApiResponse
// @Router /bookings [post]
func (ctrl *controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	confirmation, err := ctrl.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		be, ok := AsBookingError(err)
		if !ok {
			ctrl.logger.LogHTTPError(c, err, http.StatusInternalServerError)
			response.Error(c, http.StatusInternalServerError, storageFailureMessage)
			return
		}
		response.Error(c, be.HTTPStatus(), be.Message)
		return
	}

	response.Success(c, http.StatusOK, "Booking created successfully", confirmation)
}

func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return "Invalid value for field: " + typeErr.Field
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Request body is not valid JSON"
	}
	return "Invalid booking request"
}
