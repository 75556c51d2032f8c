package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/middleware"
)

func TestContactHandlerAccepted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewContactHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"item_id":5,"message":"I think I found your bottle"}`
	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.Contact(c)
	require.Equal(t, http.StatusAccepted, w.Code)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "accepted", envelope.Data["status"])
}

func TestContactHandlerMissingMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewContactHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"item_id":5}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.Contact(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandlerUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewContactHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"item_id":5,"message":"hello"}`
	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Contact(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
