package v1

import (
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	ierr "github.com/Caesar-design242/beacongen/internal/errors"
)

// ErrorResponse represents the API error response structure
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func NewErrorResponse(c *gin.Context, code int, message string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:  message,
		Detail: detail,
	})
}

// handleError maps a service error onto the HTTP status from the error
// taxonomy and surfaces the caller-facing hint when one exists.
func handleError(c *gin.Context, err error) {
	message := err.Error()
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		message = hints[0]
	}
	NewErrorResponse(c, ierr.HTTPStatusFromErr(err), message, err)
}
