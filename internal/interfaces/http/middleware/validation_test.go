package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rentdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationRouter() *gin.Engine {
	SetupValidator()

	type uploadRequest struct {
		FileName    string `json:"file_name" binding:"required"`
		ContentType string `json:"content_type" binding:"required"`
		SizeBytes   int64  `json:"size_bytes" binding:"required,gt=0"`
	}

	router := gin.New()
	router.Use(RequestID())
	router.POST("/uploads", func(c *gin.Context) {
		var req uploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestHandleValidationError(t *testing.T) {
	router := validationRouter()

	t.Run("binding failures list every offending field by json name", func(t *testing.T) {
		body := strings.NewReader(`{"content_type": "image/jpeg", "size_bytes": -5}`)
		req := httptest.NewRequest("POST", "/uploads", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

		fields := make([]string, 0, len(resp.Error.Details))
		for _, d := range resp.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "file_name")
		assert.Contains(t, fields, "size_bytes")
	})

	t.Run("response carries the request id for correlation", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/uploads", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", "upload-req-7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "upload-req-7", resp.Error.RequestID)
	})

	t.Run("valid payload is untouched", func(t *testing.T) {
		body := strings.NewReader(`{"file_name": "receipt.pdf", "content_type": "application/pdf", "size_bytes": 1024}`)
		req := httptest.NewRequest("POST", "/uploads", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type sampleInput struct {
		Name  string `validate:"required"`
		Kind  string `validate:"oneof=property work_order"`
		Size  int64  `validate:"gt=0"`
		Title string `validate:"max=10"`
	}

	v := validator.New()
	err := v.Struct(sampleInput{Kind: "vendor", Size: -1, Title: "far too long a title"})
	require.Error(t, err)

	messages := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		messages[fe.Field()] = getValidationMessage(fe)
	}

	assert.Equal(t, "This field is required", messages["Name"])
	assert.Equal(t, "Must be one of: property work_order", messages["Kind"])
	assert.Equal(t, "Must be greater than 0", messages["Size"])
	assert.Equal(t, "Must be at most 10 characters", messages["Title"])
}
