package response

import (
	"log/slog"
	"net/http"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"github.com/gin-gonic/gin"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse carries the flattened field failures of a request
type ValidationErrorResponse struct {
	Message string                       `json:"message"`
	Code    string                       `json:"code"`
	Errors  []validation.FieldValidation `json:"errors"`
}

// RespondValidationError writes a 422 with the flattened failures when err
// is a validation error and reports whether it did.
func RespondValidationError(c *gin.Context, err error, opts *validation.FlattenOptions) bool {
	fields, ok := validation.Flatten(err, opts)
	if !ok {
		return false
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: validation.ErrValidationFailed.Error(),
		Code:    CodeValidationFailed,
		Errors:  fields,
	})
	return true
}

// ErrorMiddleware renders errors attached with c.Error when the handler did
// not write a response itself.
func ErrorMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if RespondValidationError(c, err, nil) {
			logger.Debug("Request validation failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path)
			return
		}

		logger.Error("Request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
			Code:    CodeInternalError,
		})
	}
}
