package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/fieldvalidation/internal/utils"
	"github.com/SAP-F-2025/fieldvalidation/pkg/response"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common logging functionality for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// requestLogger scopes the handler logger to the current request
func (h *BaseHandler) requestLogger(c *gin.Context) utils.Logger {
	return h.logger.With(
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	h.requestLogger(c).Info(message, additionalFields...)
}

// LogError logs error details with context information
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	h.requestLogger(c).LogError(err, message, additionalFields...)
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error, details ...interface{}) {
	errorResp := response.ErrorResponse{
		Message: message,
	}
	if len(details) > 0 {
		errorResp.Details = details[0]
	}

	if err != nil {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.requestLogger(c).Warn(message, "status_code", statusCode)
	}

	c.JSON(statusCode, errorResp)
}

// RespondWithSuccess sends a consistent success response and logs it
func (h *BaseHandler) RespondWithSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	h.LogRequest(c, message, "status_code", statusCode)
	c.JSON(statusCode, response.SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// RespondWithValidationError writes a 422 for validation errors and a 500
// for anything else.
func (h *BaseHandler) RespondWithValidationError(c *gin.Context, err error) {
	if response.RespondValidationError(c, err, nil) {
		h.requestLogger(c).Debug("Validation failed", "error", err)
		return
	}
	h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
}

// HealthCheck reports liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
