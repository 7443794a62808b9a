package response

import (
	"github.com/BenViveiros/CleanCutYardWorks/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every failure response. Details carries
// field-level issues and is present only for validation failures.
type ErrorBody struct {
	Error   string                `json:"error"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// Error maps a service error onto the wire. Anything that is not an
// AppError becomes a generic 500 so internal detail never leaks.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, ErrorBody{
		Error:   appErr.Message,
		Details: appErr.Errors,
	})
}

// ErrorWithCode sends a failure with an explicit status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ValidationError sends a 400 with per-field detail
func ValidationError(c *gin.Context, message string, errors []apperror.FieldError) {
	c.JSON(400, ErrorBody{Error: message, Details: errors})
}
