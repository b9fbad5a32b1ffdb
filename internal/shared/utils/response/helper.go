package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, StandardApiResponse{
		Success: success,
		Message: message,
		Data:    data,
	})
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, code, true, message, data)
}

func Error(c *gin.Context, code int, message string) {
	RespondJSON(c, code, false, message, nil)
}

// AbortWithError writes the error envelope and stops the handler chain
func AbortWithError(c *gin.Context, code int, message string) {
	Error(c, code, message)
	c.Abort()
}

// MethodNotAllowed answers requests whose path exists under another method
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// NotFound answers requests for unknown paths
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}
