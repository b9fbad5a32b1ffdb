package events

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itickets/internal/shared/utils/response"
	"itickets/pkg/logger"
)

type Controller interface {
	ListUpcoming(c *gin.Context)
}

type controller struct {
	service Service
	logger  *logger.Logger
}

func NewController(service Service) Controller {
	return &controller{service: service, logger: logger.GetDefault()}
}

// ListUpcoming godoc
// @Summary List upcoming events
// @Description Published events dated now or later, soonest first, with remaining ticket counts
// @Tags events
// @Produce json
// @Success 200 {object} response.StandardApiResponse{data=[]EventResponse}
// @Failure 500 {object} response.StandardApiResponse
// @Router /events [get]
func (ctrl *controller) ListUpcoming(c *gin.Context) {
	events, err := ctrl.service.ListUpcoming(c.Request.Context())
	if err != nil {
		ctrl.logger.LogHTTPError(c, err, http.StatusInternalServerError)
		response.Error(c, http.StatusInternalServerError, "Unable to load events")
		return
	}

	response.Success(c, http.StatusOK, "", events)
}
