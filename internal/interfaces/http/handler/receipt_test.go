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

func TestReceiptHandler_List_InvalidFilter(t *testing.T) {
	h := NewReceiptHandler(nil, nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.GET("/receipts", h.List)

	tests := []struct {
		name  string
		query string
	}{
		{name: "malformed property filter", query: "?property_id=not-a-uuid"},
		{name: "page size over limit", query: "?page_size=500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/receipts"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestReceiptHandler_List_RequiresAccount(t *testing.T) {
	h := NewReceiptHandler(nil, nil)
	router := gin.New()
	router.GET("/receipts", h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/receipts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
}

func TestReceiptHandler_InvalidIDs(t *testing.T) {
	h := NewReceiptHandler(nil, nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.GET("/receipts/:id", h.GetByID)
	router.DELETE("/receipts/:id", h.Delete)
	router.POST("/receipts/:id/process", h.Process)
	router.POST("/expenses/:id/receipt", h.Link)
	router.DELETE("/expenses/:id/receipt", h.Unlink)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "get receipt", method: "GET", path: "/receipts/abc"},
		{name: "delete receipt", method: "DELETE", path: "/receipts/abc"},
		{name: "process receipt", method: "POST", path: "/receipts/abc/process"},
		{name: "link receipt", method: "POST", path: "/expenses/abc/receipt"},
		{name: "unlink receipt", method: "DELETE", path: "/expenses/abc/receipt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestReceiptHandler_Link_RequiresReceiptID(t *testing.T) {
	h := NewReceiptHandler(nil, nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.POST("/expenses/:id/receipt", h.Link)

	payload, err := json.Marshal(map[string]any{})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/expenses/"+uuid.New().String()+"/receipt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiptHandler_Process_BindingErrors(t *testing.T) {
	h := NewReceiptHandler(nil, nil)
	router := gin.New()
	router.Use(withAccount(uuid.New()))
	router.POST("/receipts/:id/process", h.Process)

	// Missing the required property, category, amount and date fields
	body := map[string]any{"description": "roof repair"}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/receipts/"+uuid.New().String()+"/process", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}
