package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/dto/response"
	"github.com/BenViveiros/CleanCutYardWorks/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam reads a numeric path parameter. On a malformed value it
// writes the 400 itself and reports false.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates a request body. Binding failures are
// written as a 400 with field-level detail and reported as false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]apperror.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, apperror.FieldError{
					Field:   jsonFieldName(fe.Field()),
					Message: validationMessage(fe),
				})
			}
			response.ValidationError(c, "Invalid data", details)
			return false
		}
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// jsonFieldName lowercases the leading rune of a struct field name, which
// matches the camelCase json tags on the request DTOs.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}

// parseDate accepts either a bare date or a full RFC 3339 timestamp
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
