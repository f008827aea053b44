package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type decodedResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Errors  []struct {
		Path    []interface{} `json:"path"`
		Message string        `json:"message"`
	} `json:"errors"`
}

func rangeError() error {
	item := validation.NestedItem("range", []validation.FieldValidation{
		validation.NewFieldValidation("must be < max", "min"),
	})
	return validation.NewValidationError(item, validation.NewValidationErrorItem("name", "is required", "required", ""))
}

func TestRespondValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	handled := RespondValidationError(c, rangeError(), nil)
	require.True(t, handled)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body decodedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeValidationFailed, body.Code)
	assert.Equal(t, "validation failed", body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, []interface{}{"range", "min"}, body.Errors[0].Path)
	assert.Equal(t, "must be < max", body.Errors[0].Message)
	assert.Equal(t, []interface{}{"name"}, body.Errors[1].Path)
}

func TestRespondValidationError_IgnoresOtherErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.False(t, RespondValidationError(c, errors.New("db down"), nil))
	assert.False(t, c.Writer.Written())
}

func TestErrorMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(ErrorMiddleware(nil))
	router.POST("/invalid", func(c *gin.Context) {
		_ = c.Error(rangeError())
	})
	router.POST("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
	})
	router.POST("/handled", func(c *gin.Context) {
		_ = c.Error(errors.New("already answered"))
		c.JSON(http.StatusConflict, ErrorResponse{Message: "conflict"})
	})

	cases := []struct {
		path string
		code int
	}{
		{"/invalid", http.StatusUnprocessableEntity},
		{"/broken", http.StatusInternalServerError},
		{"/handled", http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}
