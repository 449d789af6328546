package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rentdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadHandler_GenerateReceiptUploadURL_RequiresAccount(t *testing.T) {
	h := NewUploadHandler(nil)
	router := gin.New()
	router.POST("/uploads/receipts", h.GenerateReceiptUploadURL)

	body := map[string]any{
		"file_name":    "receipt.pdf",
		"file_size":    1024,
		"content_type": "application/pdf",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads/receipts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadHandler_GenerateReceiptUploadURL_BindingErrors(t *testing.T) {
	h := NewUploadHandler(nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.POST("/uploads/receipts", h.GenerateReceiptUploadURL)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "empty body", body: map[string]any{}},
		{
			name: "zero file size",
			body: map[string]any{
				"file_name":    "receipt.pdf",
				"file_size":    0,
				"content_type": "application/pdf",
			},
		},
		{
			name: "missing content type",
			body: map[string]any{
				"file_name": "receipt.pdf",
				"file_size": 1024,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/uploads/receipts", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUploadHandler_GeneratePhotoUploadURL_BindingErrors(t *testing.T) {
	h := NewUploadHandler(nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.POST("/uploads/photos", h.GeneratePhotoUploadURL)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing owner fields", body: map[string]any{
			"file_name":    "kitchen.jpg",
			"file_size":    2048,
			"content_type": "image/jpeg",
		}},
		{
			name: "owner kind outside enum",
			body: map[string]any{
				"owner_kind":   "vendor",
				"owner_id":     uuid.New().String(),
				"file_name":    "kitchen.jpg",
				"file_size":    2048,
				"content_type": "image/jpeg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/uploads/photos", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.Response
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.False(t, resp.Success)
		})
	}
}

func TestUploadHandler_ConfirmReceiptUpload_RequiresStorageKey(t *testing.T) {
	h := NewUploadHandler(nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.POST("/uploads/receipts/confirm", h.ConfirmReceiptUpload)

	body := map[string]any{
		"file_name":    "receipt.pdf",
		"file_size":    1024,
		"content_type": "application/pdf",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads/receipts/confirm", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_ConfirmPhotoUpload_BindingErrors(t *testing.T) {
	h := NewUploadHandler(nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.POST("/uploads/photos/confirm", h.ConfirmPhotoUpload)

	body := map[string]any{
		"owner_kind":  "property",
		"owner_id":    uuid.New().String(),
		"storage_key": "photos/abc.jpg",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads/photos/confirm", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
